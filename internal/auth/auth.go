// Package auth validates demo credentials and tracks the login session.
package auth

import (
	"context"
	"time"

	"spendtrack/internal/model"
)

// DefaultUsers is the built-in demo credential set, used when the config
// defines none.
func DefaultUsers() []model.User {
	return []model.User{{Email: "demo@demo.com", Password: "123456"}}
}

// Authenticator checks an (email, password) pair against a fixed user set.
// Matching is exact, case-sensitive string equality on both fields. There is
// no hashing, lockout, or rate limiting; the demo credential model is that
// simple on purpose.
type Authenticator struct {
	users []model.User
	delay time.Duration
}

// NewAuthenticator builds a gate over the given users. An empty set falls
// back to the demo users; a negative delay means no delay.
func NewAuthenticator(users []model.User, delay time.Duration) *Authenticator {
	if len(users) == 0 {
		users = DefaultUsers()
	}
	if delay < 0 {
		delay = 0
	}
	return &Authenticator{users: users, delay: delay}
}

// Login returns the matching user, or nil when the pair matches nobody.
// A failed login and an unknown email are deliberately indistinguishable.
// The artificial delay honors ctx cancellation.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*model.User, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, u := range a.users {
		if u.Email == email && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}
