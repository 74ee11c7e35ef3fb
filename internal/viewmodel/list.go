// Package viewmodel holds the observable state holders the presentation
// layer binds to. Viewmodels call the services; they never touch the store
// directly, and every long operation runs through an Activity so the UI
// always sees busy raised and cleared.
package viewmodel

import (
	"context"
	"time"

	"spendtrack/internal/model"
	"spendtrack/internal/service"
	"spendtrack/internal/viewstate"
)

// ListViewModel drives the filtered expense list.
type ListViewModel struct {
	svc *service.ExpenseService

	Activity *viewstate.Activity
	Expenses *viewstate.Value[[]model.Expense]

	// Filter criteria. Transient query parameters, never persisted.
	Category *viewstate.Value[string]
	From     *viewstate.Value[time.Time]
	To       *viewstate.Value[time.Time]
	Search   *viewstate.Value[string]
}

// NewListViewModel returns a list viewmodel with no filters active.
func NewListViewModel(svc *service.ExpenseService) *ListViewModel {
	return &ListViewModel{
		svc:      svc,
		Activity: viewstate.NewActivity(),
		Expenses: viewstate.NewValue[[]model.Expense](nil),
		Category: viewstate.NewValue(model.AllCategories),
		From:     viewstate.NewValue(time.Time{}),
		To:       viewstate.NewValue(time.Time{}),
		Search:   viewstate.NewValue(""),
	}
}

// Criteria builds the service filter from the current selections.
func (vm *ListViewModel) Criteria() service.Filter {
	return service.Filter{
		Category: vm.Category.Get(),
		From:     vm.From.Get(),
		To:       vm.To.Get(),
		Search:   vm.Search.Get(),
	}
}

// ActiveFilterCount is the badge count of active criteria.
func (vm *ListViewModel) ActiveFilterCount() int {
	return vm.Criteria().Count()
}

// Apply re-queries the service with the current criteria and publishes the
// result.
func (vm *ListViewModel) Apply(ctx context.Context) error {
	return vm.Activity.Run(func() error {
		expenses, err := vm.svc.List(ctx, vm.Criteria())
		if err != nil {
			return err
		}
		vm.Expenses.Set(expenses)
		return nil
	})
}

// ClearFilters resets every criterion and re-queries.
func (vm *ListViewModel) ClearFilters(ctx context.Context) error {
	vm.Category.Set(model.AllCategories)
	vm.From.Set(time.Time{})
	vm.To.Set(time.Time{})
	vm.Search.Set("")
	return vm.Apply(ctx)
}

// Delete removes an expense and refreshes the list. Deleting an id that is
// already gone succeeds.
func (vm *ListViewModel) Delete(ctx context.Context, id int64) error {
	return vm.Activity.Run(func() error {
		if err := vm.svc.Delete(ctx, id); err != nil {
			return err
		}
		expenses, err := vm.svc.List(ctx, vm.Criteria())
		if err != nil {
			return err
		}
		vm.Expenses.Set(expenses)
		return nil
	})
}
