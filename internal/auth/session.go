package auth

import (
	"context"
	"strconv"

	"spendtrack/internal/store"
)

// GuestName is the sentinel display name for the not-logged-in session.
const GuestName = "Guest"

// Session is the logged-in/guest state gating the main application views.
type Session struct {
	LoggedIn bool
	Email    string
}

// DisplayName is what the UI shows for the current session.
func (s Session) DisplayName() string {
	if s.Email == "" {
		return GuestName
	}
	return s.Email
}

// PrefStore is the key-value preference boundary the session persists
// through. Both store implementations satisfy it.
type PrefStore interface {
	GetPref(ctx context.Context, key string) (string, bool, error)
	SetPref(ctx context.Context, key, value string) error
	ClearUserData(ctx context.Context) error
}

// SessionManager persists the two session preference keys.
type SessionManager struct {
	prefs PrefStore
}

// NewSessionManager returns a manager over the given preference store.
func NewSessionManager(prefs PrefStore) *SessionManager {
	return &SessionManager{prefs: prefs}
}

// SignIn records a successful login.
func (m *SessionManager) SignIn(ctx context.Context, email string) error {
	if err := m.prefs.SetPref(ctx, store.PrefLoggedIn, "true"); err != nil {
		return err
	}
	return m.prefs.SetPref(ctx, store.PrefUserEmail, email)
}

// ContinueAsGuest records the guest session: not logged in, sentinel name.
func (m *SessionManager) ContinueAsGuest(ctx context.Context) error {
	if err := m.prefs.SetPref(ctx, store.PrefLoggedIn, "false"); err != nil {
		return err
	}
	return m.prefs.SetPref(ctx, store.PrefUserEmail, GuestName)
}

// Current reads the persisted session. Absent keys mean no session yet.
func (m *SessionManager) Current(ctx context.Context) (Session, error) {
	var s Session

	flag, ok, err := m.prefs.GetPref(ctx, store.PrefLoggedIn)
	if err != nil {
		return s, err
	}
	if ok {
		s.LoggedIn, _ = strconv.ParseBool(flag)
	}

	email, ok, err := m.prefs.GetPref(ctx, store.PrefUserEmail)
	if err != nil {
		return s, err
	}
	if ok {
		s.Email = email
	}
	return s, nil
}

// Logout clears both session keys atomically.
func (m *SessionManager) Logout(ctx context.Context) error {
	return m.prefs.ClearUserData(ctx)
}
