package cmd

import (
	"fmt"
	"os"
	"time"

	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/model"
	"spendtrack/internal/service"
	"spendtrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "spendtrack",
	Short: "Local expense tracker",
	Long:  "Track expenses in a local SQLite database: add, filter, summarize, and browse them in a TUI.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the expense database (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfigOrDefault loads config, returning defaults on error so commands
// always have something workable.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// dbPath resolves the database location: --db flag, then config, then the
// default data dir.
func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return config.DefaultDBPath()
}

// openService is the shared open path used by all commands.
func openService() (*service.ExpenseService, *store.DB, error) {
	cfg := loadConfigOrDefault()
	db, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("opening expense store: %w", err)
	}
	return service.New(db), db, nil
}

// newAuthenticator builds the login gate from config.
func newAuthenticator(cfg config.Config) *auth.Authenticator {
	users := make([]model.User, 0, len(cfg.Auth.Users))
	for _, u := range cfg.Auth.Users {
		users = append(users, model.User{Email: u.Email, Password: u.Password})
	}
	return auth.NewAuthenticator(users, time.Duration(cfg.Auth.LoginDelayMs)*time.Millisecond)
}
