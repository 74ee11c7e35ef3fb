// Package model defines domain types for spendtrack expenses and sessions.
package model

import (
	"errors"
	"strconv"
	"time"
)

// Category classifies an expense. The set is closed; anything else is invalid.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryOther         Category = "Other"
)

// AllCategories is the sentinel selector label meaning "no category filter".
const AllCategories = "All Categories"

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryOther,
	}
}

// ParseCategory resolves the exact (case-sensitive) string form of a category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping,
		CategoryEntertainment, CategoryBills, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidCategory  = errors.New("invalid category")
)

// Expense is a single recorded monetary outflow. The store owns the record;
// everything downstream works on copies.
type Expense struct {
	ID          int64
	Amount      float64
	Category    Category
	Date        time.Time // calendar date, UTC midnight
	Description string
	CreatedAt   time.Time
	ModifiedAt  time.Time // zero until the first update
}

// Validate checks the save preconditions. It runs at the presentation
// boundary, before anything touches the store.
func (e Expense) Validate() error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Description == "" {
		return ErrEmptyDescription
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// AmountText is the decimal string form of the amount, as used by text
// search and the CSV export.
func (e Expense) AmountText() string {
	return strconv.FormatFloat(e.Amount, 'f', 2, 64)
}

// DateOnly truncates t to its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
