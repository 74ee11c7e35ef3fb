package model

// User is a demo credential pair. Passwords are compared as plain strings;
// there is no hashing or server-side account store in the current scope.
type User struct {
	Email    string
	Password string
}
