package cmd

import (
	"fmt"

	"spendtrack/internal/auth"
	"spendtrack/internal/tui"
	"spendtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes;
	// lipgloss may otherwise pick the Ascii profile and render nothing.
	lipgloss.SetColorProfile(termenv.TrueColor)

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	app := tui.NewApp(svc, newAuthenticator(cfg), auth.NewSessionManager(db), cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
