package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"spendtrack/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const formDateLayout = "2006-01-02"

// expenseValues backs the add/edit form fields.
type expenseValues struct {
	amount      string
	category    model.Category
	date        string
	description string
}

func validateFormAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return errors.New("Amount must be greater than zero.")
	}
	return nil
}

func validateFormDate(s string) error {
	if _, err := time.Parse(formDateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("Enter a date as YYYY-MM-DD.")
	}
	return nil
}

func validateFormDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Description is required.")
	}
	return nil
}

func categoryOptions() []huh.Option[model.Category] {
	cats := model.Categories()
	opts := make([]huh.Option[model.Category], 0, len(cats))
	for _, c := range cats {
		opts = append(opts, huh.NewOption(c.String(), c))
	}
	return opts
}

// newExpenseForm builds the add/edit form. A nil expense is an add with
// today's date prefilled.
func (a *App) newExpenseForm(e *model.Expense) *huh.Form {
	vals := &expenseValues{
		category: model.CategoryOther,
		date:     time.Now().UTC().Format(formDateLayout),
	}
	a.editID = 0
	if e != nil {
		a.editID = e.ID
		vals.amount = e.AmountText()
		vals.category = e.Category
		vals.date = e.Date.Format(formDateLayout)
		vals.description = e.Description
	}
	a.expVals = vals

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(validateFormAmount).
				Value(&vals.amount),
			huh.NewSelect[model.Category]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&vals.category),
			huh.NewInput().
				Title("Date").
				Placeholder(formDateLayout).
				Validate(validateFormDate).
				Value(&vals.date),
			huh.NewInput().
				Title("Description").
				Validate(validateFormDescription).
				Value(&vals.description),
		),
	)
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}
	return form
}

func (a App) expFormTitle() string {
	if a.editID == 0 {
		return "Add Expense"
	}
	return "Edit Expense"
}

func (a App) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.expForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.expForm = f
	}

	if a.expForm.State == huh.StateCompleted {
		vals := a.expVals
		id := a.editID
		a.expForm = nil
		return a, a.saveExpenseCmd(id, vals)
	}
	if a.expForm.State == huh.StateAborted {
		a.expForm = nil
		return a, nil
	}

	return a, cmd
}

// saveExpenseCmd persists the form values and refreshes both tabs. The field
// validators already ran, so parse failures here cannot happen.
func (a App) saveExpenseCmd(id int64, vals *expenseValues) tea.Cmd {
	return func() tea.Msg {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(vals.amount), 64)
		date, _ := time.Parse(formDateLayout, strings.TrimSpace(vals.date))

		e := model.Expense{
			ID:          id,
			Amount:      amount,
			Category:    vals.category,
			Date:        date,
			Description: strings.TrimSpace(vals.description),
		}

		ctx := context.Background()
		if _, err := a.editorVM.Save(ctx, e); err != nil {
			return actionMsg{Err: err}
		}
		_ = a.listVM.Apply(ctx)
		_ = a.dashVM.Load(ctx)

		note := "Expense added"
		if id != 0 {
			note = "Expense updated"
		}
		return actionMsg{Note: note}
	}
}

// filterValues backs the filter form fields.
type filterValues struct {
	category string
	from     string
	to       string
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateFormDate(s)
}

func filterCategoryOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(model.AllCategories, model.AllCategories)}
	for _, c := range model.Categories() {
		opts = append(opts, huh.NewOption(c.String(), c.String()))
	}
	return opts
}

func (a *App) newFilterForm() *huh.Form {
	vals := &filterValues{category: a.listVM.Category.Get()}
	if from := a.listVM.From.Get(); !from.IsZero() {
		vals.from = from.Format(formDateLayout)
	}
	if to := a.listVM.To.Get(); !to.IsZero() {
		vals.to = to.Format(formDateLayout)
	}
	a.filterVals = vals

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(filterCategoryOptions()...).
				Value(&vals.category),
			huh.NewInput().
				Title("From").
				Placeholder("leave blank for no range").
				Validate(validateOptionalDate).
				Value(&vals.from),
			huh.NewInput().
				Title("To").
				Placeholder("leave blank for no range").
				Validate(validateOptionalDate).
				Value(&vals.to),
		),
	)
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}
	return form
}

func (a App) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.filterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.filterForm = f
	}

	if a.filterForm.State == huh.StateCompleted {
		vals := a.filterVals
		a.filterForm = nil
		return a, a.applyFilterCmd(vals)
	}
	if a.filterForm.State == huh.StateAborted {
		a.filterForm = nil
		return a, nil
	}

	return a, cmd
}

// applyFilterCmd writes the form selections into the list viewmodel and
// re-queries. A range needs both bounds; a single bound stays inert.
func (a App) applyFilterCmd(vals *filterValues) tea.Cmd {
	return func() tea.Msg {
		a.listVM.Category.Set(vals.category)

		from, _ := time.Parse(formDateLayout, strings.TrimSpace(vals.from))
		to, _ := time.Parse(formDateLayout, strings.TrimSpace(vals.to))
		a.listVM.From.Set(from)
		a.listVM.To.Set(to)

		if err := a.listVM.Apply(context.Background()); err != nil {
			return actionMsg{Err: err}
		}
		if from.IsZero() != to.IsZero() {
			return actionMsg{Note: "Date range needs both bounds; showing without it"}
		}
		return nil
	}
}
