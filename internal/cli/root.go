package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"docugen-cli/internal/api"
	"docugen-cli/internal/config"
	"docugen-cli/internal/logging"
	"docugen-cli/internal/session"
	"docugen-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App carries the persistent flag values plus the collaborators every
// subcommand needs. setup() populates the latter once per invocation.
type App struct {
	ConfigPath string
	BaseURL    string
	StateDir   string
	PrettyJSON bool

	cfg      config.Config
	log      *zap.Logger
	client   *api.Client
	sessions *session.Manager
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "docugen",
		Short:        "DocuGen AI document generation CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  docugen

  # Scriptable commands
  docugen login --email me@example.com --password secret
  docugen projects list
  docugen projects create --title "Q4 Analysis" --type docx --section Intro --section Forecast
  docugen generate outline --topic "EV market in 2025" --type pptx
  docugen projects export 7
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DOCUGEN_CONFIG", ""), "Path to config file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", envOr("DOCUGEN_BASE_URL", ""), "Backend base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&app.StateDir, "state-dir", envOr("DOCUGEN_STATE_DIR", ""), "Credential/state dir (advanced: overrides the default location; mainly for fixtures/tests)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newFeedbackCmd(app))

	return cmd
}

// setup resolves config, logging, the credential store and the API client.
// Restoration is trust-on-read: the stored token is used as-is and the
// backend answers 401 if it has expired.
func (app *App) setup() error {
	path := app.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if app.BaseURL != "" {
		cfg.API.BaseURL = app.BaseURL
	}
	app.cfg = cfg

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	app.log = log

	stateDir := app.StateDir
	if stateDir == "" {
		stateDir = config.StateDir()
	}

	// Client and manager reference each other: the client reads the bearer
	// token from the manager, the manager logs in through the client.
	var mgr *session.Manager
	app.client = api.New(cfg.API.BaseURL, cfg.API.Timeout(), func() string {
		return mgr.Token()
	})
	mgr = session.NewManager(session.Store{Dir: stateDir}, app.client, cfg.Session.InactivityLimit(), log)
	app.sessions = mgr

	if err := app.sessions.Restore(time.Now()); err != nil {
		log.Warn("credential restore failed", zap.Error(err))
	}
	return nil
}

func runTUI(app *App) error {
	return tui.Run(tui.Deps{
		Client:   app.client,
		Sessions: app.sessions,
		Config:   app.cfg,
		Log:      app.log,
	})
}

// requireSession gates the authenticated commands, mirroring the TUI's
// route guard for scripted use.
func (app *App) requireSession() error {
	if app.sessions.Current() == nil {
		return errors.New("not logged in; run `docugen login --email ... --password ...`")
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return writeJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
