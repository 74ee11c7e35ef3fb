package cmd

import (
	"fmt"

	"spendtrack/internal/aggregate"
	"spendtrack/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending totals by category",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	expenses, err := svc.GetAll(cmd.Context())
	if err != nil {
		return err
	}
	summary := aggregate.Summarize(expenses)

	cfg := loadConfigOrDefault()
	currency := cfg.General.Currency

	rows := [][]string{
		{"Total spent", cli.FormatAmount(summary.TotalAmount, currency), ""},
		{"Transactions", cli.FormatNumber(int64(summary.TransactionCount)), ""},
		{"Average", cli.FormatAmount(summary.AverageAmount, currency), ""},
	}
	if len(summary.ByCategory) > 0 {
		rows = append(rows, []string{"---"})
		for _, ct := range summary.ByCategory {
			rows = append(rows, []string{
				ct.Category.String(),
				cli.FormatAmount(ct.Amount, currency),
				cli.FormatPercent(ct.Percentage),
			})
		}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Spending Summary",
		Headers: []string{"", "Amount", "Share"},
		Rows:    rows,
	}))
	if summary.TransactionCount == 0 {
		fmt.Println(cli.RenderNote("No expenses recorded yet. Try `spendtrack add` or `spendtrack seed`."))
	}
	return nil
}
