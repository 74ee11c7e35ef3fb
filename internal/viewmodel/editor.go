package viewmodel

import (
	"context"

	"spendtrack/internal/model"
	"spendtrack/internal/service"
	"spendtrack/internal/viewstate"
)

// EditorViewModel backs the add/edit form. Validation happens here, at the
// presentation boundary, so an invalid expense never reaches the store.
type EditorViewModel struct {
	svc *service.ExpenseService

	Activity *viewstate.Activity
}

// NewEditorViewModel returns an editor over the given service.
func NewEditorViewModel(svc *service.ExpenseService) *EditorViewModel {
	return &EditorViewModel{svc: svc, Activity: viewstate.NewActivity()}
}

// Save validates and persists. A zero id adds (returning the assigned id);
// a non-zero id updates in place.
func (vm *EditorViewModel) Save(ctx context.Context, e model.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		vm.Activity.Err.Set(err.Error())
		return 0, err
	}

	id := e.ID
	err := vm.Activity.Run(func() error {
		if e.ID == 0 {
			newID, err := vm.svc.Add(ctx, e)
			if err != nil {
				return err
			}
			id = newID
			return nil
		}
		return vm.svc.Update(ctx, e)
	})
	return id, err
}

// Get loads an expense for editing.
func (vm *EditorViewModel) Get(ctx context.Context, id int64) (model.Expense, error) {
	return vm.svc.GetByID(ctx, id)
}
