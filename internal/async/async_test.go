package async

import "testing"

func TestZeroValueIsNotStarted(t *testing.T) {
	var v Value[int]

	if v.Status() != StatusNotStarted {
		t.Errorf("Expected zero value status to be not-started, got %v", v.Status())
	}

	if v != NotStarted[int]() {
		t.Error("Expected zero value to equal NotStarted()")
	}
}

func TestExactlyOneTagActive(t *testing.T) {
	// Complete holds a value and no error.
	c := Complete(42)
	if c.Status() != StatusComplete {
		t.Errorf("Expected complete status, got %v", c.Status())
	}
	got, ok := c.Get()
	if !ok || got != 42 {
		t.Errorf("Expected Get to return (42, true), got (%d, %v)", got, ok)
	}
	if c.ErrMessage() != "" {
		t.Errorf("Expected no error message on complete value, got %q", c.ErrMessage())
	}

	// Error holds a message and no value.
	e := Errored[int]("boom")
	if e.Status() != StatusError {
		t.Errorf("Expected error status, got %v", e.Status())
	}
	if _, ok := e.Get(); ok {
		t.Error("Expected Get to report no value on errored state")
	}
	if e.ErrMessage() != "boom" {
		t.Errorf("Expected error message 'boom', got %q", e.ErrMessage())
	}

	// InProgress holds neither.
	p := InProgress[int]()
	if p.Status() != StatusInProgress {
		t.Errorf("Expected in-progress status, got %v", p.Status())
	}
	if _, ok := p.Get(); ok {
		t.Error("Expected Get to report no value while in progress")
	}
	if p.ErrMessage() != "" {
		t.Errorf("Expected no error message while in progress, got %q", p.ErrMessage())
	}
}

func TestRefetchFromTerminalStates(t *testing.T) {
	// Terminal states may transition back to InProgress (re-fetch).
	v := Complete("snapshot")
	if v.Status() != StatusComplete {
		t.Fatalf("Expected complete, got %v", v.Status())
	}
	v = InProgress[string]()
	if v.Status() != StatusInProgress {
		t.Errorf("Expected in-progress after re-fetch, got %v", v.Status())
	}

	v = Errored[string]("failed")
	if v.Status() != StatusError {
		t.Fatalf("Expected error, got %v", v.Status())
	}
	v = InProgress[string]()
	if v.Status() != StatusInProgress {
		t.Errorf("Expected in-progress after re-fetch from error, got %v", v.Status())
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusNotStarted, "not-started"},
		{StatusInProgress, "in-progress"},
		{StatusComplete, "complete"},
		{StatusError, "error"},
		{Status(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
