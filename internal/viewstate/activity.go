package viewstate

// Activity tracks the busy flag and last error message for a state holder.
// Run gives long operations the guaranteed-cleanup shape the UI relies on:
// busy goes up before the work, and comes back down in a deferred block even
// when the work fails.
type Activity struct {
	Busy *Value[bool]
	Err  *Value[string]
}

// NewActivity returns an idle Activity.
func NewActivity() *Activity {
	return &Activity{
		Busy: NewValue(false),
		Err:  NewValue(""),
	}
}

// Run executes fn with the busy flag raised. A returned error is recorded as
// the activity's message; a success clears it. The error is also returned so
// callers can branch on it.
func (a *Activity) Run(fn func() error) error {
	a.Busy.Set(true)
	defer a.Busy.Set(false)

	if err := fn(); err != nil {
		a.Err.Set(err.Error())
		return err
	}
	a.Err.Set("")
	return nil
}
