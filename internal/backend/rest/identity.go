package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"employee-manager/internal/backend"
	"employee-manager/internal/httpx"
)

// IdentityClient talks to the auth service's password endpoints.
type IdentityClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewIdentity builds an identity client with a pooled transport.
func NewIdentity(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    newHTTPClient(),
	}
}

type credentialRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type credentialResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	// The API serializes this integer as a string.
	ExpiresIn string `json:"expiresIn"`
}

// SignIn exchanges (email, password) for a credential.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*backend.Credential, error) {
	cred, err := c.post(ctx, "accounts:signInWithPassword", email, password)
	if err != nil {
		return nil, fmt.Errorf("rest: sign-in failed: %w", err)
	}
	return cred, nil
}

// CreateUser registers a new account for (email, password).
func (c *IdentityClient) CreateUser(ctx context.Context, email, password string) (*backend.Credential, error) {
	cred, err := c.post(ctx, "accounts:signUp", email, password)
	if err != nil {
		return nil, fmt.Errorf("rest: account creation failed: %w", err)
	}
	return cred, nil
}

func (c *IdentityClient) post(ctx context.Context, endpoint, email, password string) (*backend.Credential, error) {
	if c.APIKey == "" {
		return nil, errors.New("missing API key")
	}

	b, err := json.Marshal(credentialRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	var cr credentialResponse
	err = httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			url := c.BaseURL + "/v1/" + endpoint + "?key=" + c.APIKey
			r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
			r.Header.Set("Content-Type", contentTypeJSON)
			r.Header.Set("Accept", contentTypeJSON)
			return r, nil
		},
		&cr,
		httpx.DefaultRetryConfig(),
	)
	if err != nil {
		return nil, err
	}

	if cr.LocalID == "" || cr.IDToken == "" {
		return nil, errors.New("credential not found in response")
	}

	expires, _ := strconv.Atoi(cr.ExpiresIn)
	return &backend.Credential{
		UID:          cr.LocalID,
		Email:        cr.Email,
		IDToken:      cr.IDToken,
		RefreshToken: cr.RefreshToken,
		ExpiresIn:    expires,
	}, nil
}
