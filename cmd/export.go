package cmd

import (
	"fmt"
	"os"

	"spendtrack/internal/export"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all expenses as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	expenses, err := svc.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteCSV(out, expenses); err != nil {
		return err
	}
	if flagOut != "" && !flagQuiet {
		fmt.Printf("  Wrote %d expense(s) to %s\n", len(expenses), flagOut)
	}
	return nil
}
