package service

import (
	"context"
	"testing"
	"time"

	"spendtrack/internal/model"
	"spendtrack/internal/store"
)

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

// seedService builds a service over a fresh in-memory store with a small
// known data set and returns it with the assigned ids in insert order.
func seedService(t *testing.T) (*ExpenseService, []int64) {
	t.Helper()
	svc := New(store.NewMemory())
	ctx := context.Background()

	seed := []model.Expense{
		{Amount: 12.50, Category: model.CategoryFood, Date: day(1), Description: "Lunch at cafe"},
		{Amount: 30.00, Category: model.CategoryFood, Date: day(10), Description: "Food truck"},
		{Amount: 8.00, Category: model.CategoryTransport, Date: day(10), Description: "Bus ticket"},
		{Amount: 99.99, Category: model.CategoryShopping, Date: day(20), Description: "Headphones"},
		{Amount: 55.00, Category: model.CategoryBills, Date: day(28), Description: "Electricity"},
	}

	ids := make([]int64, 0, len(seed))
	for _, e := range seed {
		id, err := svc.Add(ctx, e)
		if err != nil {
			t.Fatalf("seeding: %v", err)
		}
		ids = append(ids, id)
	}
	return svc, ids
}

func descriptions(expenses []model.Expense) []string {
	out := make([]string, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, e.Description)
	}
	return out
}

func TestAddAssignsIDAndTimestamps(t *testing.T) {
	svc := New(store.NewMemory())
	ctx := context.Background()

	id, err := svc.Add(ctx, model.Expense{
		Amount:      5,
		Category:    model.CategoryOther,
		Date:        time.Date(2026, 5, 3, 18, 30, 0, 0, time.UTC),
		Description: "Snack",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == 0 {
		t.Fatal("Add returned id 0, want store-assigned id")
	}

	got, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set on add")
	}
	if !got.ModifiedAt.IsZero() {
		t.Error("ModifiedAt set on add, want zero until first update")
	}
	if !got.Date.Equal(day(3)) {
		t.Errorf("Date = %v, want truncated to %v", got.Date, day(3))
	}
}

func TestUpdateSetsModifiedAt(t *testing.T) {
	svc, ids := seedService(t)
	ctx := context.Background()

	e, err := svc.GetByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	e.Amount = 14.00
	if err := svc.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.GetByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Amount != 14.00 {
		t.Errorf("Amount = %v, want 14.00", got.Amount)
	}
	if got.ModifiedAt.IsZero() {
		t.Error("ModifiedAt still zero after update")
	}
}

func TestUpdateMissingIsNoOp(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	err := svc.Update(ctx, model.Expense{
		ID: 9999, Amount: 1, Category: model.CategoryOther, Date: day(1), Description: "ghost",
	})
	if err != nil {
		t.Fatalf("Update of missing id returned error %v, want nil", err)
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("expense count = %d after missing update, want 5", len(all))
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	svc, ids := seedService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, 9999); err != nil {
		t.Fatalf("Delete of missing id returned error %v, want nil", err)
	}
	if err := svc.Delete(ctx, ids[2]); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting the same id twice is equally fine.
	if err := svc.Delete(ctx, ids[2]); err != nil {
		t.Fatalf("second Delete returned error %v, want nil", err)
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("expense count = %d, want 4", len(all))
	}
}

func TestGetAllSortsNewestFirst(t *testing.T) {
	svc, _ := seedService(t)

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// "Bus ticket" was inserted after "Food truck" on the same date, so its
	// higher id sorts it first.
	want := []string{"Electricity", "Headphones", "Bus ticket", "Food truck", "Lunch at cafe"}
	got := descriptions(all)
	if len(got) != len(want) {
		t.Fatalf("got %d expenses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSameDateTieBreaksByIDDesc(t *testing.T) {
	svc, ids := seedService(t)

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// "Food truck" (ids[1]) and "Bus ticket" (ids[2]) share a date; the
	// higher id sorts first.
	var foodIdx, busIdx int
	for i, e := range all {
		switch e.ID {
		case ids[1]:
			foodIdx = i
		case ids[2]:
			busIdx = i
		}
	}
	if busIdx != foodIdx-1 {
		t.Errorf("same-date ordering: bus(id %d) at %d, food(id %d) at %d; want higher id first",
			ids[2], busIdx, ids[1], foodIdx)
	}
}

func TestDateRangeBoundsInclusive(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	got, err := svc.List(ctx, Filter{From: day(10), To: day(20)})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Headphones", "Food truck", "Bus ticket"}
	if len(got) != len(want) {
		t.Fatalf("range [10,20] returned %v, want %v", descriptions(got), want)
	}

	// One day tighter on each side excludes the boundary records.
	got, err = svc.List(ctx, Filter{From: day(11), To: day(19)})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("range [11,19] returned %v, want empty", descriptions(got))
	}
}

func TestNamedFilterMethodsMatchList(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	byCat, err := svc.FilterByCategory(ctx, "Food")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Food truck", "Lunch at cafe"}; !equalStrings(descriptions(byCat), want) {
		t.Errorf("FilterByCategory(Food) = %v, want %v", descriptions(byCat), want)
	}

	byRange, err := svc.FilterByDateRange(ctx, day(10), day(20))
	if err != nil {
		t.Fatal(err)
	}
	if len(byRange) != 3 {
		t.Errorf("FilterByDateRange[10,20] = %v, want 3 records", descriptions(byRange))
	}

	both, err := svc.FilterByCategoryAndDateRange(ctx, "Food", day(5), day(15))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Food truck"}; !equalStrings(descriptions(both), want) {
		t.Errorf("FilterByCategoryAndDateRange = %v, want %v", descriptions(both), want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCombinedFilterIsIntersection(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	byCat, err := svc.List(ctx, Filter{Category: "Food"})
	if err != nil {
		t.Fatal(err)
	}
	byRange, err := svc.List(ctx, Filter{From: day(5), To: day(15)})
	if err != nil {
		t.Fatal(err)
	}
	combined, err := svc.List(ctx, Filter{Category: "Food", From: day(5), To: day(15)})
	if err != nil {
		t.Fatal(err)
	}

	inBoth := make(map[int64]bool)
	for _, e := range byCat {
		for _, r := range byRange {
			if e.ID == r.ID {
				inBoth[e.ID] = true
			}
		}
	}
	if len(combined) != len(inBoth) {
		t.Fatalf("combined returned %d records, intersection has %d", len(combined), len(inBoth))
	}
	for _, e := range combined {
		if !inBoth[e.ID] {
			t.Errorf("combined includes id %d outside the intersection", e.ID)
		}
	}
	if len(combined) != 1 || combined[0].Description != "Food truck" {
		t.Errorf("combined = %v, want [Food truck]", descriptions(combined))
	}
}

func TestAllCategoriesSentinelMeansNoFilter(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	got, err := svc.List(ctx, Filter{Category: model.AllCategories})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("sentinel category returned %d records, want 5", len(got))
	}
}

func TestSearchMatchesDescriptionAmountAndCategory(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	cases := []struct {
		term string
		want []string
	}{
		// "food" hits the Food category of both Food records and the
		// description "Food truck".
		{"food", []string{"Food truck", "Lunch at cafe"}},
		{"LUNCH", []string{"Lunch at cafe"}},
		{"99.99", []string{"Headphones"}},
		{"8.00", []string{"Bus ticket"}},
		{"transport", []string{"Bus ticket"}},
		{"no such thing", nil},
	}

	for _, tc := range cases {
		got, err := svc.List(ctx, Filter{Search: tc.term})
		if err != nil {
			t.Fatalf("List(%q): %v", tc.term, err)
		}
		gotDesc := descriptions(got)
		if len(gotDesc) != len(tc.want) {
			t.Errorf("search %q = %v, want %v", tc.term, gotDesc, tc.want)
			continue
		}
		for i := range tc.want {
			if gotDesc[i] != tc.want[i] {
				t.Errorf("search %q = %v, want %v", tc.term, gotDesc, tc.want)
				break
			}
		}
	}
}

func TestSearchOverlaysOtherFilters(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	got, err := svc.List(ctx, Filter{Category: "Food", Search: "truck"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Description != "Food truck" {
		t.Errorf("category+search = %v, want [Food truck]", descriptions(got))
	}
}

func TestFilterCount(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		want int
	}{
		{"empty", Filter{}, 0},
		{"sentinel only", Filter{Category: model.AllCategories}, 0},
		{"category", Filter{Category: "Food"}, 1},
		{"full range", Filter{From: day(1), To: day(2)}, 2},
		{"half range still counts", Filter{From: day(1)}, 1},
		{"search blank", Filter{Search: "   "}, 0},
		{"everything", Filter{Category: "Bills", From: day(1), To: day(2), Search: "x"}, 4},
	}
	for _, tc := range cases {
		if got := tc.f.Count(); got != tc.want {
			t.Errorf("%s: Count() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMergeSkipsDuplicates(t *testing.T) {
	svc, _ := seedService(t)
	ctx := context.Background()

	incoming := []model.Expense{
		// Same identity as the seeded lunch: skipped.
		{Amount: 12.50, Category: model.CategoryFood, Date: day(1), Description: "Lunch at cafe"},
		// New record: inserted.
		{Amount: 3.00, Category: model.CategoryTransport, Date: day(2), Description: "Tram"},
		// Duplicate of the new record inside the batch: inserted once.
		{Amount: 3.00, Category: model.CategoryTransport, Date: day(2), Description: "Tram"},
	}

	inserted, err := svc.Merge(ctx, incoming)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if inserted != 1 {
		t.Errorf("Merge inserted %d, want 1", inserted)
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Errorf("expense count = %d after merge, want 6", len(all))
	}
}
