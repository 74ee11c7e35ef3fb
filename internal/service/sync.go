package service

import (
	"context"

	"spendtrack/internal/model"
)

// Merge copies incoming expenses into the store, skipping any that already
// exist locally. Because ids are store-assigned they cannot be used as the
// identity across stores, so a record's identity is its date, amount,
// category, and description. Returns the number of records inserted.
func (s *ExpenseService) Merge(ctx context.Context, incoming []model.Expense) (int, error) {
	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	type key struct {
		date        string
		amount      string
		category    model.Category
		description string
	}
	keyOf := func(e model.Expense) key {
		return key{
			date:        model.DateOnly(e.Date).Format("2006-01-02"),
			amount:      e.AmountText(),
			category:    e.Category,
			description: e.Description,
		}
	}

	seen := make(map[key]struct{}, len(existing))
	for _, e := range existing {
		seen[keyOf(e)] = struct{}{}
	}

	inserted := 0
	for _, e := range incoming {
		k := keyOf(e)
		if _, ok := seen[k]; ok {
			continue
		}
		if _, err := s.Add(ctx, e); err != nil {
			return inserted, err
		}
		seen[k] = struct{}{}
		inserted++
	}
	return inserted, nil
}
