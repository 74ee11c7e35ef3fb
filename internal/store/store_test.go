package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"spendtrack/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "spendtrack.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sample(d time.Time) model.Expense {
	return model.Expense{
		Amount:      42.10,
		Category:    model.CategoryFood,
		Date:        d,
		Description: "Groceries",
		CreatedAt:   time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spendtrack.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}

	id, err := db.Insert(context.Background(), sample(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening runs schema creation again and must not lose the row.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer db.Close()

	got, err := db.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID after reopen: %v", err)
	}
	if got.Description != "Groceries" {
		t.Errorf("Description = %q, want Groceries", got.Description)
	}
}

func TestInsertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	in := sample(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))
	id, err := db.Insert(ctx, in)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == 0 {
		t.Fatal("Insert returned id 0")
	}

	got, err := db.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Amount != in.Amount || got.Category != in.Category || got.Description != in.Description {
		t.Errorf("round trip changed fields: got %+v", got)
	}
	if !got.Date.Equal(in.Date) {
		t.Errorf("Date = %v, want %v", got.Date, in.Date)
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, in.CreatedAt)
	}
	if !got.ModifiedAt.IsZero() {
		t.Errorf("ModifiedAt = %v, want zero", got.ModifiedAt)
	}
}

func TestGetByIDMissing(t *testing.T) {
	db := openTestDB(t)

	_, err := db.GetByID(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(missing) err = %v, want ErrNotFound", err)
	}
}

func TestUpdateReportsRowsAffected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.Insert(ctx, sample(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	e, err := db.GetByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	e.Description = "Weekly groceries"
	e.ModifiedAt = time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)

	n, err := db.Update(ctx, e)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 1 {
		t.Errorf("Update rows affected = %d, want 1", n)
	}

	got, err := db.GetByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "Weekly groceries" {
		t.Errorf("Description = %q after update", got.Description)
	}
	if !got.ModifiedAt.Equal(e.ModifiedAt) {
		t.Errorf("ModifiedAt = %v, want %v", got.ModifiedAt, e.ModifiedAt)
	}

	e.ID = 9999
	n, err = db.Update(ctx, e)
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if n != 0 {
		t.Errorf("Update of missing id affected %d rows, want 0", n)
	}
}

func TestDeleteReportsRowsAffected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.Insert(ctx, sample(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatal(err)
	}

	n, err := db.Delete(ctx, id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("Delete rows affected = %d, want 1", n)
	}

	n, err = db.Delete(ctx, id)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("Delete of missing id affected %d rows, want 0", n)
	}
}

func TestListQueries(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC) }
	rows := []model.Expense{
		{Amount: 10, Category: model.CategoryFood, Date: day(1), Description: "a", CreatedAt: day(1)},
		{Amount: 20, Category: model.CategoryFood, Date: day(15), Description: "b", CreatedAt: day(15)},
		{Amount: 30, Category: model.CategoryBills, Date: day(15), Description: "c", CreatedAt: day(15)},
		{Amount: 40, Category: model.CategoryBills, Date: day(30), Description: "d", CreatedAt: day(30)},
	}
	for _, r := range rows {
		if _, err := db.Insert(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	all, err := db.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("ListAll = %d rows, want 4", len(all))
	}

	food, err := db.ListByCategory(ctx, "Food")
	if err != nil {
		t.Fatal(err)
	}
	if len(food) != 2 {
		t.Errorf("ListByCategory(Food) = %d rows, want 2", len(food))
	}

	// Bounds are inclusive on both ends.
	ranged, err := db.ListByDateRange(ctx, day(15), day(30))
	if err != nil {
		t.Fatal(err)
	}
	if len(ranged) != 3 {
		t.Errorf("ListByDateRange[15,30] = %d rows, want 3", len(ranged))
	}

	both, err := db.ListByCategoryAndDateRange(ctx, "Bills", day(15), day(30))
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 2 {
		t.Errorf("combined query = %d rows, want 2", len(both))
	}
}

func TestPrefs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, ok, err := db.GetPref(ctx, PrefLoggedIn); err != nil || ok {
		t.Fatalf("GetPref on empty table: ok=%v err=%v, want absent", ok, err)
	}

	if err := db.SetPref(ctx, PrefLoggedIn, "true"); err != nil {
		t.Fatalf("SetPref: %v", err)
	}
	if err := db.SetPref(ctx, PrefUserEmail, "demo@demo.com"); err != nil {
		t.Fatalf("SetPref: %v", err)
	}
	// Overwrite in place.
	if err := db.SetPref(ctx, PrefLoggedIn, "false"); err != nil {
		t.Fatalf("SetPref overwrite: %v", err)
	}

	v, ok, err := db.GetPref(ctx, PrefLoggedIn)
	if err != nil || !ok || v != "false" {
		t.Errorf("GetPref = %q ok=%v err=%v, want false/true/nil", v, ok, err)
	}

	if err := db.ClearUserData(ctx); err != nil {
		t.Fatalf("ClearUserData: %v", err)
	}
	if _, ok, _ := db.GetPref(ctx, PrefLoggedIn); ok {
		t.Error("logged_in still present after ClearUserData")
	}
	if _, ok, _ := db.GetPref(ctx, PrefUserEmail); ok {
		t.Error("user_email still present after ClearUserData")
	}
}

// expenseStore is the slice of the store surface this test needs; both
// implementations satisfy it.
type expenseStore interface {
	Insert(ctx context.Context, e model.Expense) (int64, error)
	Update(ctx context.Context, e model.Expense) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Expense, error)
}

func TestUpdateNeverTouchesCreatedAt(t *testing.T) {
	stores := []struct {
		name string
		open func(t *testing.T) expenseStore
	}{
		{"sqlite", func(t *testing.T) expenseStore { return openTestDB(t) }},
		{"memory", func(t *testing.T) expenseStore { return NewMemory() }},
	}

	for _, tc := range stores {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.open(t)
			ctx := context.Background()

			created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
			in := sample(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))
			in.CreatedAt = created

			id, err := s.Insert(ctx, in)
			if err != nil {
				t.Fatalf("Insert: %v", err)
			}

			// Callers on the edit path send a zero CreatedAt; the stored
			// value must survive anyway.
			upd := in
			upd.ID = id
			upd.CreatedAt = time.Time{}
			upd.Description = "Weekly groceries"
			upd.ModifiedAt = time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)

			if _, err := s.Update(ctx, upd); err != nil {
				t.Fatalf("Update: %v", err)
			}

			got, err := s.GetByID(ctx, id)
			if err != nil {
				t.Fatal(err)
			}
			if !got.CreatedAt.Equal(created) {
				t.Errorf("CreatedAt after update = %v, want %v", got.CreatedAt, created)
			}
			if got.Description != "Weekly groceries" {
				t.Errorf("Description = %q after update", got.Description)
			}
		})
	}
}

func TestMemoryMatchesDBSemantics(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	id, err := mem.Insert(ctx, sample(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("first Memory id = %d, want 1", id)
	}

	if _, err := mem.GetByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Memory GetByID(missing) = %v, want ErrNotFound", err)
	}

	n, err := mem.Update(ctx, model.Expense{ID: 99})
	if err != nil || n != 0 {
		t.Errorf("Memory Update(missing) = %d, %v, want 0, nil", n, err)
	}
	n, err = mem.Delete(ctx, 99)
	if err != nil || n != 0 {
		t.Errorf("Memory Delete(missing) = %d, %v, want 0, nil", n, err)
	}
}
