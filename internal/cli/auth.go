package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sessions.Login(cmd.Context(), email, password); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"email":     email,
				"logged_in": true,
			}})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account, then log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.Register(cmd.Context(), email, password); err != nil {
				return writeErr(cmd, err)
			}
			if err := app.sessions.Login(cmd.Context(), email, password); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"email":      email,
				"registered": true,
				"logged_in":  true,
			}})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sessions.Logout(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"logged_out": true}})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.sessions.Current()
			if s == nil {
				return writeOut(cmd, app, map[string]any{"data": nil})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"email": s.Email}})
		},
	}
}
