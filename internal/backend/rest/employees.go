package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"employee-manager/internal/domain"
	"employee-manager/internal/httpx"
)

// RosterClient reads and writes the per-user employee collection stored under
// /users/{uid}/employees in the document tree.
type RosterClient struct {
	BaseURL string
	HTTP    *http.Client

	// AuthToken is the signed-in user's ID token. Set it from the login
	// credential before making calls.
	AuthToken string
}

// NewRoster builds a roster client with a pooled transport.
func NewRoster(baseURL string) *RosterClient {
	return &RosterClient{
		BaseURL: baseURL,
		HTTP:    newHTTPClient(),
	}
}

// FetchEmployees returns the full collection snapshot for the owner. The
// service returns JSON null for a missing collection; that is normalized to
// an empty map.
func (c *RosterClient) FetchEmployees(ctx context.Context, ownerUID string) (map[string]domain.Employee, error) {
	u, err := c.collectionURL(ownerUID, "")
	if err != nil {
		return nil, err
	}

	var snapshot map[string]domain.Employee
	err = httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if err != nil {
				return nil, err
			}
			r.Header.Set("Accept", contentTypeJSON)
			return r, nil
		},
		&snapshot,
		httpx.DefaultRetryConfig(),
	)
	if err != nil {
		return nil, fmt.Errorf("rest: fetch employees failed: %w", err)
	}

	if snapshot == nil {
		snapshot = map[string]domain.Employee{}
	}
	return snapshot, nil
}

// CreateEmployee stores a new record under a freshly minted id and returns
// that id.
func (c *RosterClient) CreateEmployee(ctx context.Context, ownerUID string, e domain.Employee) (string, error) {
	if !e.Shift.Valid() {
		return "", fmt.Errorf("rest: create employee: invalid shift %q", e.Shift)
	}

	id := uuid.NewString()
	e.UID = id
	if err := c.put(ctx, ownerUID, id, e); err != nil {
		return "", fmt.Errorf("rest: create employee failed: %w", err)
	}
	return id, nil
}

// SaveEmployee replaces the record stored under id.
func (c *RosterClient) SaveEmployee(ctx context.Context, ownerUID, id string, e domain.Employee) error {
	if id == "" {
		return errors.New("rest: save employee: missing id")
	}
	if !e.Shift.Valid() {
		return fmt.Errorf("rest: save employee: invalid shift %q", e.Shift)
	}

	if err := c.put(ctx, ownerUID, id, e); err != nil {
		return fmt.Errorf("rest: save employee failed: %w", err)
	}
	return nil
}

// DeleteEmployee removes the record stored under id.
func (c *RosterClient) DeleteEmployee(ctx context.Context, ownerUID, id string) error {
	if id == "" {
		return errors.New("rest: delete employee: missing id")
	}

	u, err := c.collectionURL(ownerUID, id)
	if err != nil {
		return err
	}

	_, _, err = httpx.DoWithRetry(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			return http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
		},
		httpx.DefaultRetryConfig(),
	)
	if err != nil {
		return fmt.Errorf("rest: delete employee failed: %w", err)
	}
	return nil
}

func (c *RosterClient) put(ctx context.Context, ownerUID, id string, e domain.Employee) error {
	u, err := c.collectionURL(ownerUID, id)
	if err != nil {
		return err
	}

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	_, _, err = httpx.DoWithRetry(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
			r.Header.Set("Content-Type", contentTypeJSON)
			return r, nil
		},
		httpx.DefaultRetryConfig(),
	)
	return err
}

func (c *RosterClient) collectionURL(ownerUID, id string) (string, error) {
	if c.AuthToken == "" {
		return "", errors.New("rest: missing auth token (sign in first)")
	}
	if ownerUID == "" {
		return "", errors.New("rest: missing owner uid")
	}

	path := "/users/" + url.PathEscape(ownerUID) + "/employees"
	if id != "" {
		path += "/" + url.PathEscape(id)
	}

	u, err := url.Parse(c.BaseURL + path + ".json")
	if err != nil {
		return "", fmt.Errorf("rest: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("auth", c.AuthToken)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
