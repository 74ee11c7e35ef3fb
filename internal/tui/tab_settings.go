package tui

import (
	"context"
	"strings"

	"spendtrack/internal/config"
	"spendtrack/internal/tui/components"
	"spendtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateSettingsKey handles settings tab keys. The bool reports whether the
// key was consumed.
func (a App) updateSettingsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "t":
		a.cycleTheme()
		return a, nil, true
	case "L":
		return a, a.logoutCmd(), true
	}
	return a, nil, false
}

// cycleTheme switches to the next theme and persists the choice.
func (a *App) cycleTheme() {
	current := 0
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			current = i
			break
		}
	}
	next := theme.All[(current+1)%len(theme.All)]
	theme.SetActive(next.Name)

	a.cfg.Appearance.Theme = next.Name
	_ = config.Save(a.cfg)
}

// logoutCmd clears the persisted session; the empty session arriving through
// the subscription brings the login screen back.
func (a App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.loginVM.Logout(context.Background()); err != nil {
			return actionMsg{Err: err}
		}
		return nil
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)

	status := "Guest (read and write, no account)"
	if a.session.LoggedIn {
		status = "Signed in"
	}

	var sessionBody strings.Builder
	sessionBody.WriteString(labelStyle.Render("User:    ") + valueStyle.Render(a.session.DisplayName()) + "\n")
	sessionBody.WriteString(labelStyle.Render("Status:  ") + valueStyle.Render(status) + "\n\n")
	sessionBody.WriteString(accentStyle.Render("[L]") + labelStyle.Render(" log out and return to the login screen"))

	var appearanceBody strings.Builder
	for _, th := range theme.All {
		if th.Name == theme.Active.Name {
			appearanceBody.WriteString(accentStyle.Render("(o) " + th.Name))
		} else {
			appearanceBody.WriteString(labelStyle.Render("( ) " + th.Name))
		}
		appearanceBody.WriteString("\n")
	}
	appearanceBody.WriteString("\n")
	appearanceBody.WriteString(accentStyle.Render("[t]") + labelStyle.Render(" cycle theme"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Currency:    ") + valueStyle.Render(a.cfg.General.Currency))

	var b strings.Builder
	b.WriteString(components.ContentCard("Session", sessionBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Appearance", appearanceBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About", infoBody.String(), cw))

	return b.String()
}
