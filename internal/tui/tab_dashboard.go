package tui

import (
	"fmt"
	"strings"

	"spendtrack/internal/cli"
	"spendtrack/internal/model"
	"spendtrack/internal/tui/components"
	"spendtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// categoryColor gives each category a stable theme color for the bars.
func categoryColor(c model.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.CategoryFood:
		return t.Green
	case model.CategoryTransport:
		return t.Blue
	case model.CategoryShopping:
		return t.Magenta
	case model.CategoryEntertainment:
		return t.Orange
	case model.CategoryBills:
		return t.Yellow
	default:
		return t.Cyan
	}
}

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	s := a.summary
	currency := a.cfg.General.Currency

	var b strings.Builder

	cards := []struct{ Label, Value, Note string }{
		{"Total Spent", cli.FormatAmount(s.TotalAmount, currency), ""},
		{"Transactions", cli.FormatNumber(int64(s.TransactionCount)), ""},
		{"Average", cli.FormatAmount(s.AverageAmount, currency), "per expense"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(s.ByCategory) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("Nothing recorded yet. Add an expense to see the breakdown.")
		b.WriteString(components.ContentCard("Spending by Category", empty, cw))
		return b.String()
	}

	bars := make([]components.Bar, 0, len(s.ByCategory))
	for _, ct := range s.ByCategory {
		bars = append(bars, components.Bar{
			Label: ct.Category.String(),
			Value: fmt.Sprintf("%s  %s", cli.FormatAmount(ct.Amount, currency), cli.FormatPercent(ct.Percentage)),
			Share: ct.Amount,
			Color: categoryColor(ct.Category),
		})
	}

	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Spending by Category",
		components.BarRows(bars, innerW), cw))

	return b.String()
}
