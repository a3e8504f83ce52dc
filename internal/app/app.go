// Package app combines the state slices into the single application store.
package app

import (
	"employee-manager/internal/auth"
	"employee-manager/internal/employees"
	"employee-manager/internal/store"
)

// State is the whole application state: the auth slice and the employees
// slice, reduced independently. The zero value is the documented initial
// state for both.
type State struct {
	Auth      auth.State
	Employees employees.State
}

// Reduce routes every action through both slice reducers. Each reducer
// ignores actions it does not recognize, so routing is unconditional.
func Reduce(s State, a store.Action) State {
	return State{
		Auth:      auth.Reduce(s.Auth, a),
		Employees: employees.Reduce(s.Employees, a),
	}
}

// New builds the application store in its initial state.
func New() *store.Store[State] {
	return store.New(Reduce, State{})
}
