package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"docugen-cli/internal/model"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsExportCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			projects, err := app.client.ListProjects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if f := strings.TrimSpace(filter); f != "" {
				kept := projects[:0]
				for _, p := range projects {
					if strings.Contains(strings.ToLower(p.Title), strings.ToLower(f)) {
						kept = append(kept, p)
					}
				}
				projects = kept
			}
			return writeOut(cmd, app, map[string]any{"data": projects})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Case-insensitive title filter")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			id, err := parseProjectID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			project, err := app.client.GetProject(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": project})
		},
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var title string
	var topic string
	var projectType string
	var sections []string
	var suggest bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project and generate its content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			pt := model.ProjectType(projectType)
			if !pt.Valid() {
				return writeErr(cmd, fmt.Errorf("invalid --type %q (docx|pptx)", projectType))
			}

			title = strings.TrimSpace(title)
			topic = strings.TrimSpace(topic)
			if title == "" {
				// Same default as the wizard: the topic stands in.
				title = topic
			}
			if title == "" {
				return writeErr(cmd, fmt.Errorf("--title or --topic is required"))
			}

			titles := cleanSections(sections)
			if suggest {
				if topic == "" {
					return writeErr(cmd, fmt.Errorf("--suggest needs --topic"))
				}
				suggested, err := app.client.SuggestOutline(cmd.Context(), topic, pt)
				if err != nil {
					return writeErr(cmd, err)
				}
				titles = suggested
			}
			if len(titles) == 0 {
				return writeErr(cmd, fmt.Errorf("at least one --section is required (or pass --suggest with --topic)"))
			}

			project, err := app.client.CreateProject(cmd.Context(), title, pt, titles)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": project})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title (defaults to --topic)")
	cmd.Flags().StringVar(&topic, "topic", "", "Main topic / prompt")
	cmd.Flags().StringVar(&projectType, "type", "docx", "Project type (docx|pptx)")
	cmd.Flags().StringArrayVar(&sections, "section", nil, "Section/slide title (repeatable, ordered)")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "Build the outline via AI suggestion instead of --section flags")
	return cmd
}

func newProjectsExportCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Download the rendered document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return writeErr(cmd, err)
			}
			id, err := parseProjectID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			// The file name derives from the project title and type, so
			// fetch metadata before the binary payload.
			project, err := app.client.GetProject(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			data, err := app.client.ExportProject(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}

			dir := outDir
			if dir == "" {
				dir = app.cfg.Export.Dir
			}
			path := filepath.Join(dir, project.ExportFileName())
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"path":  path,
				"bytes": len(data),
			}})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: export.dir from config)")
	return cmd
}

func parseProjectID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid project id %q", s)
	}
	return id, nil
}

func cleanSections(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
