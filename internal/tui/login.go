package tui

import (
	"context"

	"spendtrack/internal/tui/theme"
	"spendtrack/internal/viewmodel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// loginValues backs the login form fields.
type loginValues struct {
	email    string
	password string
}

func (a *App) newLoginForm() *huh.Form {
	a.loginVals = &loginValues{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("demo@demo.com").
				Validate(viewmodel.ValidateEmail).
				Value(&a.loginVals.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(viewmodel.ValidatePassword).
				Value(&a.loginVals.password),
		),
	)
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}
	return form
}

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Esc skips the gate and browses as guest.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.loginForm = nil
		return a, a.guestCmd()
	}

	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	if a.loginForm.State == huh.StateCompleted {
		email, password := a.loginVals.email, a.loginVals.password
		a.loginForm = nil
		return a, a.loginCmd(email, password)
	}
	if a.loginForm.State == huh.StateAborted {
		a.loginForm = nil
		return a, a.guestCmd()
	}

	return a, cmd
}

// loginCmd runs the credential check. Success arrives through the session
// subscription; a rejection re-shows the form with a message.
func (a App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ok, err := a.loginVM.Login(context.Background(), email, password)
		if err != nil {
			return loginFailedMsg{Message: err.Error()}
		}
		if !ok {
			return loginFailedMsg{Message: "Invalid email or password."}
		}
		return nil
	}
}

func (a App) guestCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.loginVM.ContinueAsGuest(context.Background()); err != nil {
			return actionMsg{Err: err}
		}
		return nil
	}
}

func (a App) viewLogin() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("◈ spendtrack") +
		subtitleStyle.Render(" · Expense Tracker") + "\n\n"
	if a.loginErr != "" {
		body += errStyle.Render(a.loginErr) + "\n\n"
	}
	body += a.loginForm.View() + "\n"
	body += hintStyle.Render("enter to sign in · esc to browse as guest")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(t.Background))
}
