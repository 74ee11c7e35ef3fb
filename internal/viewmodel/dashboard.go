package viewmodel

import (
	"context"

	"spendtrack/internal/aggregate"
	"spendtrack/internal/model"
	"spendtrack/internal/service"
	"spendtrack/internal/viewstate"
)

// DashboardViewModel drives the summary view. The summary is computed from a
// snapshot; callers re-invoke Load after the store changes.
type DashboardViewModel struct {
	svc *service.ExpenseService

	Activity *viewstate.Activity
	Summary  *viewstate.Value[model.Summary]
}

// NewDashboardViewModel returns an empty dashboard viewmodel.
func NewDashboardViewModel(svc *service.ExpenseService) *DashboardViewModel {
	return &DashboardViewModel{
		svc:      svc,
		Activity: viewstate.NewActivity(),
		Summary:  viewstate.NewValue(model.Summary{}),
	}
}

// Load takes a fresh snapshot and publishes its summary.
func (vm *DashboardViewModel) Load(ctx context.Context) error {
	return vm.Activity.Run(func() error {
		expenses, err := vm.svc.GetAll(ctx)
		if err != nil {
			return err
		}
		vm.Summary.Set(aggregate.Summarize(expenses))
		return nil
	})
}
