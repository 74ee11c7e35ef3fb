package cmd

import (
	"fmt"
	"time"

	"spendtrack/internal/cli"
	"spendtrack/internal/service"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagFrom     string
	flagTo       string
	flagSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Filter to one category (exact match)")
	listCmd.Flags().StringVar(&flagFrom, "from", "", "Range start, inclusive (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&flagTo, "to", "", "Range end, inclusive (YYYY-MM-DD)")
	listCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Case-insensitive text search")
	rootCmd.AddCommand(listCmd)
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD, got %q", name, value)
	}
	return t, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	from, err := parseDateFlag("from", flagFrom)
	if err != nil {
		return err
	}
	to, err := parseDateFlag("to", flagTo)
	if err != nil {
		return err
	}
	if from.IsZero() != to.IsZero() {
		return fmt.Errorf("--from and --to must be used together")
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	filter := service.Filter{
		Category: flagCategory,
		From:     from,
		To:       to,
		Search:   flagSearch,
	}
	expenses, err := svc.List(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses found.")
		if filter.Count() > 0 {
			fmt.Println("  Try loosening the filters, or run `spendtrack seed` for sample data.")
		}
		return nil
	}

	cfg := loadConfigOrDefault()
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			cli.FormatDate(e.Date),
			e.Category.String(),
			cli.FormatAmount(e.Amount, cfg.General.Currency),
			e.Description,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%d)", len(expenses)),
		Headers: []string{"ID", "Date", "Category", "Amount", "Description"},
		Rows:    rows,
	}))
	if n := filter.Count(); n > 0 {
		fmt.Println(cli.RenderNote(fmt.Sprintf("%d filter(s) active", n)))
	}
	return nil
}
