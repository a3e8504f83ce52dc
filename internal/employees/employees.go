// Package employees owns the cached roster slice: a passive mirror of the
// remote employee collection plus the subscription status that populates it.
package employees

import (
	"employee-manager/internal/async"
	"employee-manager/internal/domain"
	"employee-manager/internal/store"
)

// Action types consumed by Reduce.
const (
	TypeWatchStart  = "WATCH_START"
	TypeFetched     = "EMPLOYEES_FETCHED"
	TypeUnsubscribe = "UNSUBSCRIBE"
)

// Roster is the collection snapshot keyed by employee id.
type Roster = map[string]domain.Employee

// State is the employees slice. The zero value is the documented initial
// state: roster fetch not started.
type State struct {
	Roster async.Value[Roster]
}

// Reduce is the pure transition function for the employees slice.
//
// Each EMPLOYEES_FETCHED snapshot fully replaces the prior roster; there is
// no merging. A nil payload is normalized to an empty map so a Complete
// roster is never nil. Unrecognized actions, including the store's internal
// initialization action, leave the state unchanged.
func Reduce(s State, a store.Action) State {
	switch a.Type {
	case TypeWatchStart:
		s.Roster = async.InProgress[Roster]()
		return s
	case TypeFetched:
		snapshot, _ := a.Payload.(Roster)
		if snapshot == nil {
			snapshot = Roster{}
		}
		s.Roster = async.Complete(snapshot)
		return s
	case TypeUnsubscribe:
		s.Roster = async.NotStarted[Roster]()
		return s
	default:
		return s
	}
}

// Fetched wraps a collection snapshot in its action.
func Fetched(snapshot Roster) store.Action {
	return store.Action{Type: TypeFetched, Payload: snapshot}
}
