package viewmodel

import (
	"context"
	"errors"
	"regexp"

	"spendtrack/internal/auth"
	"spendtrack/internal/viewstate"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9](\.?[a-zA-Z0-9_%+-])*@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}$`)

// Field validation errors, surfaced before the gate is ever consulted.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailInvalid     = errors.New("please enter a valid email address")
)

// ValidateEmail checks presence and syntax.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword checks presence only; the gate decides everything else.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// LoginViewModel drives the login screen and the session lifecycle.
type LoginViewModel struct {
	gate     *auth.Authenticator
	sessions *auth.SessionManager

	Activity *viewstate.Activity
	Session  *viewstate.Value[auth.Session]
}

// NewLoginViewModel returns a login viewmodel with no session loaded.
func NewLoginViewModel(gate *auth.Authenticator, sessions *auth.SessionManager) *LoginViewModel {
	return &LoginViewModel{
		gate:     gate,
		sessions: sessions,
		Activity: viewstate.NewActivity(),
		Session:  viewstate.NewValue(auth.Session{}),
	}
}

// Restore loads any persisted session, e.g. to skip the login screen after a
// restart.
func (vm *LoginViewModel) Restore(ctx context.Context) (auth.Session, error) {
	s, err := vm.sessions.Current(ctx)
	if err != nil {
		return auth.Session{}, err
	}
	vm.Session.Set(s)
	return s, nil
}

// Login runs field validation, consults the gate, and on success persists
// the session. ok=false with a nil error is a rejected credential pair;
// which field was wrong is deliberately not distinguished.
func (vm *LoginViewModel) Login(ctx context.Context, email, password string) (ok bool, err error) {
	if err := ValidateEmail(email); err != nil {
		vm.Activity.Err.Set(err.Error())
		return false, err
	}
	if err := ValidatePassword(password); err != nil {
		vm.Activity.Err.Set(err.Error())
		return false, err
	}

	err = vm.Activity.Run(func() error {
		user, err := vm.gate.Login(ctx, email, password)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}
		if err := vm.sessions.SignIn(ctx, user.Email); err != nil {
			return err
		}
		vm.Session.Set(auth.Session{LoggedIn: true, Email: user.Email})
		ok = true
		return nil
	})
	return ok, err
}

// ContinueAsGuest bypasses the gate entirely.
func (vm *LoginViewModel) ContinueAsGuest(ctx context.Context) error {
	return vm.Activity.Run(func() error {
		if err := vm.sessions.ContinueAsGuest(ctx); err != nil {
			return err
		}
		vm.Session.Set(auth.Session{LoggedIn: false, Email: auth.GuestName})
		return nil
	})
}

// Logout clears the persisted session state.
func (vm *LoginViewModel) Logout(ctx context.Context) error {
	return vm.Activity.Run(func() error {
		if err := vm.sessions.Logout(ctx); err != nil {
			return err
		}
		vm.Session.Set(auth.Session{})
		return nil
	})
}
