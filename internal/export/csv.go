// Package export reads and writes the expense CSV interchange format.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"spendtrack/internal/model"
)

var header = []string{"Id", "Amount", "Category", "Date", "Description", "CreatedAt", "ModifiedAt"}

const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)

// WriteCSV writes expenses in export order: one header row, then one row per
// expense.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range expenses {
		modified := ""
		if !e.ModifiedAt.IsZero() {
			modified = e.ModifiedAt.UTC().Format(timeLayout)
		}
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.AmountText(),
			e.Category.String(),
			e.Date.UTC().Format(dateLayout),
			e.Description,
			e.CreatedAt.UTC().Format(timeLayout),
			modified,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the same layout back into expenses. Ids are carried through
// as-is; import paths that re-add records ignore them because the target
// store assigns its own.
func ReadCSV(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Tolerate a missing header row.
	if records[0][0] == header[0] {
		records = records[1:]
	}

	expenses := make([]model.Expense, 0, len(records))
	for i, rec := range records {
		e, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func parseRow(rec []string) (model.Expense, error) {
	var e model.Expense
	var err error

	if e.ID, err = strconv.ParseInt(rec[0], 10, 64); err != nil {
		return e, fmt.Errorf("bad id %q", rec[0])
	}
	if e.Amount, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return e, fmt.Errorf("bad amount %q", rec[1])
	}
	if e.Category, err = model.ParseCategory(rec[2]); err != nil {
		return e, fmt.Errorf("bad category %q", rec[2])
	}
	if e.Date, err = time.Parse(dateLayout, rec[3]); err != nil {
		return e, fmt.Errorf("bad date %q", rec[3])
	}
	e.Description = rec[4]
	if rec[5] != "" {
		if e.CreatedAt, err = time.Parse(timeLayout, rec[5]); err != nil {
			return e, fmt.Errorf("bad created-at %q", rec[5])
		}
	}
	if rec[6] != "" {
		if e.ModifiedAt, err = time.Parse(timeLayout, rec[6]); err != nil {
			return e, fmt.Errorf("bad modified-at %q", rec[6])
		}
	}
	return e, nil
}
