package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestSnippet(t *testing.T) {
	testCases := []struct {
		input    string
		max      int
		expected string
	}{
		{"short text", 100, "short text"},
		{"", 100, ""},
		{"  trimmed  ", 100, "trimmed"},
		{"long text that is cut", 9, "long text..."},
	}

	for _, tc := range testCases {
		result := snippet([]byte(tc.input), tc.max)
		if result != tc.expected {
			t.Errorf("snippet(%q, %d) = %q, want %q", tc.input, tc.max, result, tc.expected)
		}
	}
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{
		Method:     "GET",
		URL:        "https://example.com",
		StatusCode: 404,
		Body:       []byte("Not Found"),
	}

	expected := "http error: GET https://example.com status=404 body=Not Found"
	if err.Error() != expected {
		t.Errorf("HTTPError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxAttempts != 4 {
		t.Errorf("Expected MaxAttempts to be 4, got %d", cfg.MaxAttempts)
	}
	if cfg.BaseDelay != 500*time.Millisecond {
		t.Errorf("Expected BaseDelay to be 500ms, got %v", cfg.BaseDelay)
	}
	if !cfg.Retry5xx {
		t.Error("Expected Retry5xx to be true")
	}
	for _, status := range []int{429, 408} {
		if !cfg.RetryStatuses[status] {
			t.Errorf("Expected status %d to be retryable", status)
		}
	}
}

func TestIsRetryableStatus(t *testing.T) {
	cfg := DefaultRetryConfig()

	for _, code := range []int{500, 502, 503, 599, 429, 408} {
		if !isRetryableStatus(code, cfg) {
			t.Errorf("Expected status %d to be retryable", code)
		}
	}
	for _, code := range []int{200, 301, 400, 401, 403, 404} {
		if isRetryableStatus(code, cfg) {
			t.Errorf("Expected status %d to not be retryable", code)
		}
	}
}

func TestDoWithRetryRecoversFrom5xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`ok`))
	}))
	defer server.Close()

	cfg := RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Retry5xx: true}
	resp, body, err := DoWithRetry(
		context.Background(),
		server.Client(),
		func(ctx context.Context) (*http.Request, error) {
			return http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		},
		cfg,
	)
	if err != nil {
		t.Fatalf("Expected success after retry, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != "ok" {
		t.Errorf("Expected body 'ok', got %q", body)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("Expected 2 attempts, got %d", calls)
	}
}

func TestDoWithRetryDoesNotRetry4xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"EMAIL_NOT_FOUND"}`))
	}))
	defer server.Close()

	cfg := RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Retry5xx: true}
	_, _, err := DoWithRetry(
		context.Background(),
		server.Client(),
		func(ctx context.Context) (*http.Request, error) {
			return http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		},
		cfg,
	)

	var herr *HTTPError
	if err == nil {
		t.Fatal("Expected an error for 400 response")
	}
	if !asHTTPError(err, &herr) {
		t.Fatalf("Expected *HTTPError, got %T: %v", err, err)
	}
	if herr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", herr.StatusCode)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("Expected exactly 1 attempt, got %d", calls)
	}
}

func asHTTPError(err error, target **HTTPError) bool {
	h, ok := err.(*HTTPError)
	if ok {
		*target = h
	}
	return ok
}

func TestDoJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Ana","phone":"555"}`))
	}))
	defer server.Close()

	var out struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	err := DoJSON(
		context.Background(),
		server.Client(),
		func(ctx context.Context) (*http.Request, error) {
			return http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		},
		&out,
		DefaultRetryConfig(),
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.Name != "Ana" || out.Phone != "555" {
		t.Errorf("Expected decoded payload, got %+v", out)
	}
}

func TestParseRetryAfterSeconds(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("Retry-After", "3")

	if got := ParseRetryAfter(resp); got != 3*time.Second {
		t.Errorf("Expected 3s, got %v", got)
	}

	resp.Header.Set("Retry-After", "garbage")
	if got := ParseRetryAfter(resp); got != 0 {
		t.Errorf("Expected 0 for invalid header, got %v", got)
	}

	resp.Header.Del("Retry-After")
	if got := ParseRetryAfter(resp); got != 0 {
		t.Errorf("Expected 0 for missing header, got %v", got)
	}
}
