package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == loginFocusEmail {
			m.loginFocus = loginFocusPassword
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.loginFocus = loginFocusEmail
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, nil

	case "ctrl+r":
		m.registerMode = !m.registerMode
		return m, nil

	case "enter":
		if m.loggingIn {
			return m, nil
		}
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			return m, m.toast("Enter email and password.")
		}
		m.loggingIn = true
		if m.registerMode {
			return m, m.registerCmd(email, password)
		}
		return m, m.loginCmd(email, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == loginFocusEmail {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewLoginScreen() string {
	title := "Welcome Back"
	subtitle := "Enter your credentials."
	action := "Sign In"
	toggle := "ctrl+r: sign up instead"
	if m.registerMode {
		title = "Create Account"
		subtitle = "Start generating today."
		action = "Sign Up"
		toggle = "ctrl+r: sign in instead"
	}

	submit := styleButton(!m.loggingIn).Render(action)
	if m.loggingIn {
		submit = m.spin.View() + " " + styleMuted().Render("Signing in…")
	}

	form := strings.Join([]string{
		styleAccent().Render("DocuGen AI"),
		"",
		styleHeader().Render(title),
		styleMuted().Render(subtitle),
		"",
		"Email     " + m.emailInput.View(),
		"Password  " + m.passwordInput.View(),
		"",
		submit,
	}, "\n")

	footer := styleMuted().Render("tab: fields  enter: " + strings.ToLower(action) + "  " + toggle + "  ctrl+c: quit")
	return m.frame(form, footer)
}

// frame centers the body and pins the footer plus minibuffer at the bottom.
func (m appModel) frame(body, footer string) string {
	lines := []string{"", body, ""}
	if m.minibufferText != "" {
		lines = append(lines, styleAccent().Render(m.minibufferText))
	}
	lines = append(lines, footer)
	out := strings.Join(lines, "\n")
	if m.width > 0 {
		out = lipgloss.NewStyle().Padding(0, 2).MaxWidth(m.width).Render(out)
	}
	return out
}
