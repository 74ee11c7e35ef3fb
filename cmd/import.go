package cmd

import (
	"fmt"
	"os"

	"spendtrack/internal/export"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Merge expenses from a CSV export",
	Long:  "Read a CSV file produced by `spendtrack export` and insert any records not already present. Matching is by date, amount, category, and description.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	incoming, err := export.ReadCSV(f)
	if err != nil {
		return err
	}
	for i, e := range incoming {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, err := svc.Merge(cmd.Context(), incoming)
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Imported %d of %d record(s); %d already present\n",
			inserted, len(incoming), len(incoming)-inserted)
	}
	return nil
}
