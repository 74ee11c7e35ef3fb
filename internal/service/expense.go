// Package service implements the expense query surface over a store.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"spendtrack/internal/model"
)

// Store is the persistence contract the service runs on. Both the SQLite
// store and the in-memory store satisfy it. Ids are assigned by the store.
type Store interface {
	Insert(ctx context.Context, e model.Expense) (int64, error)
	Update(ctx context.Context, e model.Expense) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Expense, error)
	ListAll(ctx context.Context) ([]model.Expense, error)
	ListByCategory(ctx context.Context, category string) ([]model.Expense, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Expense, error)
	ListByCategoryAndDateRange(ctx context.Context, category string, from, to time.Time) ([]model.Expense, error)
}

// ExpenseService applies filtering and ordering on top of a Store. It keeps
// no state of its own: every call re-reads the store.
type ExpenseService struct {
	store Store
}

// New returns a query service over the given store.
func New(store Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// GetAll returns every expense, newest date first.
func (s *ExpenseService) GetAll(ctx context.Context) ([]model.Expense, error) {
	expenses, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(expenses)
	return expenses, nil
}

// GetByID returns a single expense, or store.ErrNotFound through the store.
func (s *ExpenseService) GetByID(ctx context.Context, id int64) (model.Expense, error) {
	return s.store.GetByID(ctx, id)
}

// Add persists a new expense and returns its store-assigned id. CreatedAt is
// set here; validation is the presentation layer's job and does not happen
// again on this path.
func (s *ExpenseService) Add(ctx context.Context, e model.Expense) (int64, error) {
	e.CreatedAt = time.Now().UTC()
	e.ModifiedAt = time.Time{}
	e.Date = model.DateOnly(e.Date)
	return s.store.Insert(ctx, e)
}

// Update rewrites an existing expense and refreshes ModifiedAt. Updating an
// id that does not exist is a silent no-op, not an error.
func (s *ExpenseService) Update(ctx context.Context, e model.Expense) error {
	e.ModifiedAt = time.Now().UTC()
	e.Date = model.DateOnly(e.Date)
	_, err := s.store.Update(ctx, e)
	return err
}

// Delete removes an expense. Deleting an absent id is a no-op.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	_, err := s.store.Delete(ctx, id)
	return err
}

// FilterByCategory returns expenses whose category string matches exactly
// (case-sensitive), newest date first.
func (s *ExpenseService) FilterByCategory(ctx context.Context, category string) ([]model.Expense, error) {
	expenses, err := s.store.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(expenses)
	return expenses, nil
}

// FilterByDateRange returns expenses dated within [from, to], inclusive on
// both bounds, newest date first.
func (s *ExpenseService) FilterByDateRange(ctx context.Context, from, to time.Time) ([]model.Expense, error) {
	expenses, err := s.store.ListByDateRange(ctx, model.DateOnly(from), model.DateOnly(to))
	if err != nil {
		return nil, err
	}
	sortByDateDesc(expenses)
	return expenses, nil
}

// FilterByCategoryAndDateRange is the conjunction of both predicates,
// resolved by the store in a single query.
func (s *ExpenseService) FilterByCategoryAndDateRange(ctx context.Context, category string, from, to time.Time) ([]model.Expense, error) {
	expenses, err := s.store.ListByCategoryAndDateRange(ctx, category, model.DateOnly(from), model.DateOnly(to))
	if err != nil {
		return nil, err
	}
	sortByDateDesc(expenses)
	return expenses, nil
}

// Filter holds the transient query criteria the presentation layer builds.
type Filter struct {
	Category string    // "" or the AllCategories sentinel means no filter
	From, To time.Time // range is active only when both are set
	Search   string    // case-insensitive substring, applied last
}

// CategoryActive reports whether a real category is selected.
func (f Filter) CategoryActive() bool {
	return f.Category != "" && f.Category != model.AllCategories
}

// RangeActive reports whether both date bounds are set.
func (f Filter) RangeActive() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

// Count returns how many criteria are active, for the filter badge.
func (f Filter) Count() int {
	n := 0
	if f.CategoryActive() {
		n++
	}
	if !f.From.IsZero() {
		n++
	}
	if !f.To.IsZero() {
		n++
	}
	if strings.TrimSpace(f.Search) != "" {
		n++
	}
	return n
}

// List resolves a Filter against the store. Query selection, in priority
// order: both category and range active -> the combined single query;
// category only; range only; otherwise the full set. The text-search overlay
// then narrows the candidates, and the result is re-sorted by date
// descending regardless of the path taken.
func (s *ExpenseService) List(ctx context.Context, f Filter) ([]model.Expense, error) {
	var (
		expenses []model.Expense
		err      error
	)

	switch {
	case f.CategoryActive() && f.RangeActive():
		expenses, err = s.store.ListByCategoryAndDateRange(ctx, f.Category, model.DateOnly(f.From), model.DateOnly(f.To))
	case f.CategoryActive():
		expenses, err = s.store.ListByCategory(ctx, f.Category)
	case f.RangeActive():
		expenses, err = s.store.ListByDateRange(ctx, model.DateOnly(f.From), model.DateOnly(f.To))
	default:
		expenses, err = s.store.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		term = strings.ToLower(term)
		n := 0
		for _, e := range expenses {
			if matchesSearch(e, term) {
				expenses[n] = e
				n++
			}
		}
		expenses = expenses[:n]
	}

	sortByDateDesc(expenses)
	return expenses, nil
}

// matchesSearch checks the lowered term against the description, the
// two-decimal amount text, and the category string.
func matchesSearch(e model.Expense, term string) bool {
	return strings.Contains(strings.ToLower(e.Description), term) ||
		strings.Contains(e.AmountText(), term) ||
		strings.Contains(strings.ToLower(e.Category.String()), term)
}

// sortByDateDesc orders newest date first, id descending on equal dates so
// results are reproducible.
func sortByDateDesc(expenses []model.Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].ID > expenses[j].ID
	})
}
