// Package aggregate computes dashboard summaries from expense snapshots.
package aggregate

import (
	"sort"

	"spendtrack/internal/model"
)

// Summarize computes totals, the average, and the per-category breakdown for
// a fixed snapshot of expenses. It is pure: identical input always produces
// identical output, and nothing is cached between calls. Callers re-invoke
// after reloading from the store.
func Summarize(expenses []model.Expense) model.Summary {
	var s model.Summary

	byCategory := make(map[model.Category]float64)
	for _, e := range expenses {
		s.TotalAmount += e.Amount
		s.TransactionCount++
		byCategory[e.Category] += e.Amount
	}

	if s.TransactionCount > 0 {
		s.AverageAmount = s.TotalAmount / float64(s.TransactionCount)
	}

	s.ByCategory = make([]model.CategoryTotal, 0, len(byCategory))
	for cat, amount := range byCategory {
		pct := 0.0
		if s.TotalAmount > 0 {
			pct = amount / s.TotalAmount * 100
		}
		s.ByCategory = append(s.ByCategory, model.CategoryTotal{
			Category:   cat,
			Amount:     amount,
			Percentage: pct,
		})
	}

	// Amount descending, category name ascending on ties. Percentages are not
	// renormalized to sum to exactly 100 under rounding.
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Amount != s.ByCategory[j].Amount {
			return s.ByCategory[i].Amount > s.ByCategory[j].Amount
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	return s
}
