package auth

import (
	"context"

	"employee-manager/internal/backend"
	"employee-manager/internal/store"
)

// ScreenMain is the screen the navigator is sent to after a successful login.
const ScreenMain = "Main"

// Navigator moves the UI to a named screen. The app's navigation stack
// implements this; tests substitute a recorder.
type Navigator interface {
	Navigate(screen string)
}

// Login returns the unit of work for one login attempt. When executed it
// dispatches LOGIN_START first and synchronously, then tries to sign in with
// (email, password). Any sign-in failure falls back to creating an account
// with the same credentials. Either success path dispatches LOGIN_SUCCESS and
// navigates to the main screen exactly once; if both calls fail it dispatches
// LOGIN_FAIL and never navigates. Exactly one terminal action is dispatched
// per invocation.
//
// Known limitation: overlapping invocations are not serialized; behavior of a
// second login started before the first resolves is undefined. A hung identity
// call leaves the slice in progress until the ctx expires.
//
// Whether falling back to account creation on *any* sign-in failure (including
// transient network errors) is the right product behavior is an open question
// inherited from the backend's single-error contract; see DESIGN.md.
func Login(svc backend.Identity, nav Navigator, email, password string) store.Thunk {
	return func(ctx context.Context, dispatch store.Dispatch) {
		dispatch(store.Action{Type: TypeLoginStart})

		cred, err := svc.SignIn(ctx, email, password)
		if err != nil {
			cred, err = svc.CreateUser(ctx, email, password)
		}
		if err != nil {
			dispatch(store.Action{Type: TypeLoginFail})
			return
		}

		dispatch(store.Action{Type: TypeLoginSuccess, Payload: cred})
		nav.Navigate(ScreenMain)
	}
}
