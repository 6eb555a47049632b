package cli

import (
	"fmt"
	"os"
	"strings"

	"docugen-cli/internal/model"

	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "AI generation commands",
	}
	cmd.AddCommand(newGenerateOutlineCmd(app))
	cmd.AddCommand(newGenerateRefineCmd(app))
	return cmd
}

func newGenerateOutlineCmd(app *App) *cobra.Command {
	var topic string
	var projectType string

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Suggest an outline for a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			pt := model.ProjectType(projectType)
			if !pt.Valid() {
				return writeErr(cmd, fmt.Errorf("invalid --type %q (docx|pptx)", projectType))
			}
			titles, err := app.client.SuggestOutline(cmd.Context(), strings.TrimSpace(topic), pt)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"outline": titles}})
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Main topic / prompt")
	cmd.Flags().StringVar(&projectType, "type", "docx", "Project type (docx|pptx)")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newGenerateRefineCmd(app *App) *cobra.Command {
	var sectionID int
	var prompt string
	var content string
	var contentFile string

	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Refine a section's content with an instruction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			if sectionID <= 0 {
				return writeErr(cmd, fmt.Errorf("a positive --section id is required"))
			}
			current := content
			if contentFile != "" {
				raw, err := os.ReadFile(contentFile)
				if err != nil {
					return writeErr(cmd, err)
				}
				current = string(raw)
			}
			refined, err := app.client.RefineSection(cmd.Context(), sectionID, strings.TrimSpace(prompt), current)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"section_id": sectionID,
				"content":    refined,
			}})
		},
	}

	cmd.Flags().IntVar(&sectionID, "section", 0, "Section id")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Refinement instruction")
	cmd.Flags().StringVar(&content, "content", "", "Current section content")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "Read current content from a file instead of --content")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}
