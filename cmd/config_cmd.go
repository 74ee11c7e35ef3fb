// Package cmd implements the spendtrack CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"spendtrack/internal/cli"
	"spendtrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("spendtrack configuration"))
	fmt.Println()
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", dbPath(cfg))
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Auth]")
	fmt.Printf("    Login delay: %dms\n", cfg.Auth.LoginDelayMs)
	if len(cfg.Auth.Users) == 0 {
		fmt.Println("    Users: demo set (demo@demo.com)")
	} else {
		for _, u := range cfg.Auth.Users {
			fmt.Printf("    User: %s / %s\n", u.Email, maskPassword(u.Password))
		}
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	return nil
}

func maskPassword(p string) string {
	if len(p) <= 2 {
		return "****"
	}
	return p[:1] + strings.Repeat("*", len(p)-2) + p[len(p)-1:]
}
