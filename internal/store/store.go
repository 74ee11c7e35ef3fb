// Package store provides the SQLite-backed expense and preference storage.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendtrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("expense not found")

const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

// DB is the durable expense store. Open returns a ready handle with the
// schema in place; there is no separate initialize step and no hidden
// init-once flag. Records are owned here; ids are assigned by the store.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path. Safe to call
// repeatedly: schema creation is create-if-absent and never loses data.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Insert stores a new expense and returns the id the store assigned to it.
func (s *DB) Insert(ctx context.Context, e model.Expense) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO expenses
		(amount, category, date, description, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Amount, e.Category.String(), e.Date.UTC().Format(dateLayout),
		e.Description, e.CreatedAt.UTC().Format(timeLayout), nullTime(e.ModifiedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	return res.LastInsertId()
}

// Update rewrites the record with e's id and returns the rows affected.
// Zero rows means no record with that id exists.
func (s *DB) Update(ctx context.Context, e model.Expense) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE expenses
		SET amount = ?, category = ?, date = ?, description = ?, modified_at = ?
		WHERE id = ?`,
		e.Amount, e.Category.String(), e.Date.UTC().Format(dateLayout),
		e.Description, nullTime(e.ModifiedAt), e.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating expense: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes the record with the given id and returns the rows affected.
func (s *DB) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting expense: %w", err)
	}
	return res.RowsAffected()
}

// GetByID returns the expense with the given id, or ErrNotFound.
func (s *DB) GetByID(ctx context.Context, id int64) (model.Expense, error) {
	row := s.db.QueryRowContext(ctx, selectCols+" FROM expenses WHERE id = ?", id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Expense{}, ErrNotFound
	}
	return e, err
}

// ListAll returns every stored expense. No ordering is promised here; the
// query service owns result ordering.
func (s *DB) ListAll(ctx context.Context) ([]model.Expense, error) {
	return s.list(ctx, selectCols+" FROM expenses")
}

// ListByCategory returns expenses whose category matches exactly. The
// comparison is against the category's string form on both sides.
func (s *DB) ListByCategory(ctx context.Context, category string) ([]model.Expense, error) {
	return s.list(ctx, selectCols+" FROM expenses WHERE category = ?", category)
}

// ListByDateRange returns expenses with from <= date <= to, both inclusive.
func (s *DB) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Expense, error) {
	return s.list(ctx, selectCols+" FROM expenses WHERE date >= ? AND date <= ?",
		from.UTC().Format(dateLayout), to.UTC().Format(dateLayout))
}

// ListByCategoryAndDateRange applies both predicates in a single query, so a
// combined filter costs one round trip instead of two.
func (s *DB) ListByCategoryAndDateRange(ctx context.Context, category string, from, to time.Time) ([]model.Expense, error) {
	return s.list(ctx, selectCols+" FROM expenses WHERE category = ? AND date >= ? AND date <= ?",
		category, from.UTC().Format(dateLayout), to.UTC().Format(dateLayout))
}

const selectCols = "SELECT id, amount, category, date, description, created_at, modified_at"

func (s *DB) list(ctx context.Context, query string, args ...any) ([]model.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var e model.Expense
	var category, date, created string
	var modified sql.NullString

	if err := row.Scan(&e.ID, &e.Amount, &category, &date, &e.Description, &created, &modified); err != nil {
		return model.Expense{}, err
	}

	e.Category = model.Category(category)
	var err error
	if e.Date, err = time.Parse(dateLayout, date); err != nil {
		return model.Expense{}, fmt.Errorf("parsing expense date %q: %w", date, err)
	}
	if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return model.Expense{}, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	if modified.Valid && modified.String != "" {
		if e.ModifiedAt, err = time.Parse(timeLayout, modified.String); err != nil {
			return model.Expense{}, fmt.Errorf("parsing modified_at %q: %w", modified.String, err)
		}
	}
	return e, nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(timeLayout)
}
