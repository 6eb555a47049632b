package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors use lipgloss.AdaptiveColor and "faint" styling is applied only on
// dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorControlBg lipgloss.TerminalColor = ac("252", "235")

	colorPositive lipgloss.TerminalColor = ac("28", "40")  // green
	colorNegative lipgloss.TerminalColor = ac("160", "196") // red
	colorWarm     lipgloss.TerminalColor = ac("166", "208") // orange
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

func styleDocxBadge() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1)
}

func stylePptxBadge() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorWarm).Padding(0, 1)
}

func stylePositive() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorPositive).Bold(true)
}

func styleNegative() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorNegative).Bold(true)
}

func styleButton(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg)
	if active {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. Only NO_COLOR is honored; otherwise the terminal's
// detected capabilities apply.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
