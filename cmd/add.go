package cmd

import (
	"fmt"
	"time"

	"spendtrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAmount      float64
	flagAddCategory string
	flagDate        string
	flagDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Float64VarP(&flagAmount, "amount", "a", 0, "Amount spent (required, > 0)")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", string(model.CategoryOther), "Category")
	addCmd.Flags().StringVar(&flagDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&flagDescription, "description", "m", "", "Description (required)")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	date := time.Now()
	if flagDate != "" {
		parsed, err := parseDateFlag("date", flagDate)
		if err != nil {
			return err
		}
		date = parsed
	}

	category, err := model.ParseCategory(flagAddCategory)
	if err != nil {
		return fmt.Errorf("unknown category %q (valid: %v)", flagAddCategory, model.Categories())
	}

	e := model.Expense{
		Amount:      flagAmount,
		Category:    category,
		Date:        model.DateOnly(date),
		Description: flagDescription,
	}
	// Validation happens here, before the store is ever touched.
	if err := e.Validate(); err != nil {
		return err
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := svc.Add(cmd.Context(), e)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Expense saved (id %d)\n", id)
	}
	return nil
}
