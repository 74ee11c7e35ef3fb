package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"spendtrack/internal/model"
	"spendtrack/internal/store"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an existing expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().Float64VarP(&flagAmount, "amount", "a", 0, "New amount")
	editCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&flagDate, "date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&flagDescription, "description", "m", "", "New description")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("expense id must be a number, got %q", args[0])
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := svc.GetByID(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no expense with id %d", id)
		}
		return err
	}

	if cmd.Flags().Changed("amount") {
		e.Amount = flagAmount
	}
	if cmd.Flags().Changed("category") {
		category, err := model.ParseCategory(flagAddCategory)
		if err != nil {
			return fmt.Errorf("unknown category %q (valid: %v)", flagAddCategory, model.Categories())
		}
		e.Category = category
	}
	if cmd.Flags().Changed("date") {
		date, err := parseDateFlag("date", flagDate)
		if err != nil {
			return err
		}
		e.Date = model.DateOnly(date)
	}
	if cmd.Flags().Changed("description") {
		e.Description = flagDescription
	}

	if err := e.Validate(); err != nil {
		return err
	}
	if err := svc.Update(cmd.Context(), e); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Expense %d updated\n", id)
	}
	return nil
}
