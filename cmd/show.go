package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"spendtrack/internal/cli"
	"spendtrack/internal/store"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one expense in full, including timestamps",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	cfg := loadConfigOrDefault()
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Expense %d", e.ID),
		Rows: [][]string{
			{"Amount", cli.FormatAmount(e.Amount, cfg.General.Currency)},
			{"Category", e.Category.String()},
			{"Date", cli.FormatDate(e.Date)},
			{"Description", e.Description},
			{"---"},
			{"Created", cli.FormatTimestamp(e.CreatedAt)},
			{"Modified", cli.FormatTimestamp(e.ModifiedAt)},
		},
	}))
	return nil
}
