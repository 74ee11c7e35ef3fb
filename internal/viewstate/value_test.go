package viewstate

import (
	"errors"
	"testing"
)

func TestValueGetSet(t *testing.T) {
	v := NewValue(10)
	if got := v.Get(); got != 10 {
		t.Errorf("Get = %d, want initial 10", got)
	}
	v.Set(42)
	if got := v.Get(); got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}
}

func TestSubscribeNotifiesOnEverySet(t *testing.T) {
	v := NewValue("")

	var got []string
	v.Subscribe(func(s string) { got = append(got, s) })

	v.Set("a")
	v.Set("b")
	v.Set("b") // unchanged value still notifies

	want := []string{"a", "b", "b"}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("notifications = %v, want %v", got, want)
		}
	}
}

func TestSubscribeCancel(t *testing.T) {
	v := NewValue(0)

	calls := 0
	cancel := v.Subscribe(func(int) { calls++ })

	v.Set(1)
	cancel()
	v.Set(2)

	if calls != 1 {
		t.Errorf("calls = %d after cancel, want 1", calls)
	}
}

func TestMultipleSubscribers(t *testing.T) {
	v := NewValue(0)

	a, b := 0, 0
	v.Subscribe(func(n int) { a = n })
	v.Subscribe(func(n int) { b = n })

	v.Set(7)
	if a != 7 || b != 7 {
		t.Errorf("subscribers saw %d and %d, want 7 and 7", a, b)
	}
}

func TestActivityRunRaisesAndClearsBusy(t *testing.T) {
	act := NewActivity()

	var busyDuring bool
	err := act.Run(func() error {
		busyDuring = act.Busy.Get()
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !busyDuring {
		t.Error("busy not raised during the work")
	}
	if act.Busy.Get() {
		t.Error("busy still raised after Run")
	}
	if act.Err.Get() != "" {
		t.Errorf("Err = %q after success, want empty", act.Err.Get())
	}
}

func TestActivityRunRecordsError(t *testing.T) {
	act := NewActivity()
	boom := errors.New("boom")

	if err := act.Run(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, want boom", err)
	}
	if act.Busy.Get() {
		t.Error("busy still raised after a failed Run")
	}
	if act.Err.Get() != "boom" {
		t.Errorf("Err = %q, want boom", act.Err.Get())
	}

	// The next success clears the message.
	if err := act.Run(func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if act.Err.Get() != "" {
		t.Errorf("Err = %q after recovery, want empty", act.Err.Get())
	}
}
