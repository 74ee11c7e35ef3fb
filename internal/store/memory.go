package store

import (
	"context"
	"sync"
	"time"

	"spendtrack/internal/model"
)

// Memory is an in-memory store with the same semantics as DB: ids are
// assigned by the store, reads return copies, preference clears are atomic.
// Used by tests and as a throwaway demo backend.
type Memory struct {
	mu       sync.Mutex
	expenses map[int64]model.Expense
	prefs    map[string]string
	nextID   int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		expenses: make(map[int64]model.Expense),
		prefs:    make(map[string]string),
		nextID:   1,
	}
}

func (m *Memory) Insert(_ context.Context, e model.Expense) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.nextID
	m.nextID++
	m.expenses[e.ID] = e
	return e.ID, nil
}

func (m *Memory) Update(_ context.Context, e model.Expense) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.expenses[e.ID]
	if !ok {
		return 0, nil
	}
	// CreatedAt is written once at insert; updates never touch it, matching
	// the UPDATE statement in the sqlite store.
	e.CreatedAt = prev.CreatedAt
	m.expenses[e.ID] = e
	return 1, nil
}

func (m *Memory) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return 0, nil
	}
	delete(m.expenses, id)
	return 1, nil
}

func (m *Memory) GetByID(_ context.Context, id int64) (model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.expenses[id]
	if !ok {
		return model.Expense{}, ErrNotFound
	}
	return e, nil
}

func (m *Memory) ListAll(_ context.Context) ([]model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(func(model.Expense) bool { return true }), nil
}

func (m *Memory) ListByCategory(_ context.Context, category string) ([]model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(func(e model.Expense) bool {
		return e.Category.String() == category
	}), nil
}

func (m *Memory) ListByDateRange(_ context.Context, from, to time.Time) ([]model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(func(e model.Expense) bool {
		return inRange(e.Date, from, to)
	}), nil
}

func (m *Memory) ListByCategoryAndDateRange(_ context.Context, category string, from, to time.Time) ([]model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(func(e model.Expense) bool {
		return e.Category.String() == category && inRange(e.Date, from, to)
	}), nil
}

func (m *Memory) GetPref(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.prefs[key]
	return v, ok, nil
}

func (m *Memory) SetPref(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = value
	return nil
}

func (m *Memory) ClearUserData(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prefs, PrefLoggedIn)
	delete(m.prefs, PrefUserEmail)
	return nil
}

// snapshot must be called with the lock held.
func (m *Memory) snapshot(keep func(model.Expense) bool) []model.Expense {
	var out []model.Expense
	for _, e := range m.expenses {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// inRange reports from <= d <= to, inclusive on both bounds.
func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
