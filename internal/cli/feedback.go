package cli

import (
	"fmt"
	"strings"

	"docugen-cli/internal/model"

	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	var sectionID int
	var like, dislike bool
	var comment string

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Rate or comment on a generated section",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			if sectionID <= 0 {
				return writeErr(cmd, fmt.Errorf("a positive --section id is required"))
			}
			if like && dislike {
				return writeErr(cmd, fmt.Errorf("--like and --dislike are mutually exclusive"))
			}
			comment = strings.TrimSpace(comment)
			if !like && !dislike && comment == "" {
				return writeErr(cmd, fmt.Errorf("nothing to send: pass --like, --dislike and/or --comment"))
			}

			fb := model.Feedback{SectionID: sectionID, Comment: comment}
			if like || dislike {
				fb.IsLiked = &like
			}
			if err := app.client.SubmitFeedback(cmd.Context(), fb); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"section_id": sectionID,
				"sent":       true,
			}})
		},
	}

	cmd.Flags().IntVar(&sectionID, "section", 0, "Section id")
	cmd.Flags().BoolVar(&like, "like", false, "Mark the section as liked")
	cmd.Flags().BoolVar(&dislike, "dislike", false, "Mark the section as disliked")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-text comment")
	return cmd
}
