package model

// CategoryTotal is the per-category slice of a Summary. Percentage is of the
// grand total, 0-100. Derived, never persisted.
type CategoryTotal struct {
	Category   Category
	Amount     float64
	Percentage float64
}

// Summary holds dashboard totals computed from a snapshot of expenses.
type Summary struct {
	TotalAmount      float64
	TransactionCount int
	AverageAmount    float64
	ByCategory       []CategoryTotal
}
