// Package auth owns the login form, the in-flight login status, and the
// signed-in user, plus the orchestration that drives a login attempt against
// the remote identity service.
package auth

import (
	"employee-manager/internal/async"
	"employee-manager/internal/backend"
	"employee-manager/internal/store"
)

// Action types consumed by Reduce.
const (
	TypeEmailChanged    = "EMAIL_CHANGED"
	TypePasswordChanged = "PASSWORD_CHANGED"
	TypeLoginStart      = "LOGIN_START"
	TypeLoginSuccess    = "LOGIN_SUCCESS"
	TypeLoginFail       = "LOGIN_FAIL"
)

// FailedMessage is the single user-facing login error. Provider error detail
// deliberately never reaches state.
const FailedMessage = "Authentication failed."

// State is the auth slice. The zero value is the documented initial state:
// empty form fields, login not started, no user. It lives only for the app
// session and is never persisted.
type State struct {
	Email    string
	Password string
	Login    async.Value[*backend.Credential]
	User     *backend.Credential
}

// Reduce is the pure transition function for the auth slice. Unrecognized
// actions, including the store's internal initialization action, leave the
// state unchanged.
func Reduce(s State, a store.Action) State {
	switch a.Type {
	case TypeEmailChanged:
		email, _ := a.Payload.(string)
		s.Email = email
		return s
	case TypePasswordChanged:
		password, _ := a.Payload.(string)
		s.Password = password
		return s
	case TypeLoginStart:
		s.Login = async.InProgress[*backend.Credential]()
		return s
	case TypeLoginSuccess:
		cred, _ := a.Payload.(*backend.Credential)
		// Clear the form after a successful login; only the user survives.
		return State{User: cred}
	case TypeLoginFail:
		s.Login = async.Errored[*backend.Credential](FailedMessage)
		return s
	default:
		return s
	}
}

// EmailChanged replaces the email form field.
func EmailChanged(email string) store.Action {
	return store.Action{Type: TypeEmailChanged, Payload: email}
}

// PasswordChanged replaces the password form field.
func PasswordChanged(password string) store.Action {
	return store.Action{Type: TypePasswordChanged, Payload: password}
}
