package backend

import (
	"context"

	"employee-manager/internal/domain"
)

// Credential is the identity returned by the auth service after a successful
// sign-in or account creation.
type Credential struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresIn    int
}

// Identity is the remote authentication service. Both calls may fail for any
// reason; callers do not branch on the cause.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	CreateUser(ctx context.Context, email, password string) (*Credential, error)
}

// Roster is the remote per-user employee collection.
type Roster interface {
	// FetchEmployees returns the full collection snapshot keyed by employee
	// id. A missing collection comes back as an empty (non-nil) map.
	FetchEmployees(ctx context.Context, ownerUID string) (map[string]domain.Employee, error)
	CreateEmployee(ctx context.Context, ownerUID string, e domain.Employee) (string, error)
	SaveEmployee(ctx context.Context, ownerUID, id string, e domain.Employee) error
	DeleteEmployee(ctx context.Context, ownerUID, id string) error
}
