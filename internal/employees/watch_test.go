package employees

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"employee-manager/internal/async"
	"employee-manager/internal/backend"
	"employee-manager/internal/domain"
	"employee-manager/internal/store"
)

var _ backend.Roster = (*mockRoster)(nil)

// mockRoster is a mock implementation of the backend.Roster interface.
type mockRoster struct {
	FetchEmployeesFunc func(ctx context.Context, ownerUID string) (map[string]domain.Employee, error)
}

func (m *mockRoster) FetchEmployees(ctx context.Context, ownerUID string) (map[string]domain.Employee, error) {
	return m.FetchEmployeesFunc(ctx, ownerUID)
}

func (m *mockRoster) CreateEmployee(ctx context.Context, ownerUID string, e domain.Employee) (string, error) {
	return "", errors.New("not implemented")
}

func (m *mockRoster) SaveEmployee(ctx context.Context, ownerUID, id string, e domain.Employee) error {
	return errors.New("not implemented")
}

func (m *mockRoster) DeleteEmployee(ctx context.Context, ownerUID, id string) error {
	return errors.New("not implemented")
}

// actionLog is a concurrency-safe dispatch recorder.
type actionLog struct {
	mu      sync.Mutex
	actions []store.Action
}

func (l *actionLog) dispatch(a store.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actions = append(l.actions, a)
}

func (l *actionLog) snapshot() []store.Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]store.Action(nil), l.actions...)
}

func TestWatchDispatchesStartThenSnapshots(t *testing.T) {
	roster := map[string]domain.Employee{
		"a": {Name: "Ana", Phone: "1", Shift: domain.ShiftMonday, UID: "a"},
	}
	fetched := make(chan struct{}, 16)
	svc := &mockRoster{
		FetchEmployeesFunc: func(ctx context.Context, ownerUID string) (map[string]domain.Employee, error) {
			if ownerUID != "owner-1" {
				t.Errorf("Expected owner 'owner-1', got %q", ownerUID)
			}
			fetched <- struct{}{}
			return roster, nil
		},
	}
	log := &actionLog{}

	sub := Watch(context.Background(), svc, "owner-1", time.Hour, log.dispatch, nil)

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for first fetch")
	}
	sub.Stop()

	actions := log.snapshot()
	if len(actions) < 3 {
		t.Fatalf("Expected at least [WATCH_START EMPLOYEES_FETCHED UNSUBSCRIBE], got %d actions", len(actions))
	}
	if actions[0].Type != TypeWatchStart {
		t.Errorf("Expected first action WATCH_START, got %q", actions[0].Type)
	}
	if actions[1].Type != TypeFetched {
		t.Errorf("Expected second action EMPLOYEES_FETCHED, got %q", actions[1].Type)
	}
	if last := actions[len(actions)-1]; last.Type != TypeUnsubscribe {
		t.Errorf("Expected last action UNSUBSCRIBE, got %q", last.Type)
	}
}

func TestWatchKeepsGoingAfterFetchError(t *testing.T) {
	var calls int
	fetched := make(chan struct{}, 16)
	svc := &mockRoster{
		FetchEmployeesFunc: func(ctx context.Context, ownerUID string) (map[string]domain.Employee, error) {
			calls++
			if calls == 1 {
				fetched <- struct{}{}
				return nil, errors.New("transient")
			}
			fetched <- struct{}{}
			return map[string]domain.Employee{}, nil
		},
	}
	log := &actionLog{}

	sub := Watch(context.Background(), svc, "owner-1", 10*time.Millisecond, log.dispatch, nil)

	// First fetch fails, second succeeds.
	for i := 0; i < 2; i++ {
		select {
		case <-fetched:
		case <-time.After(2 * time.Second):
			t.Fatalf("Timed out waiting for fetch %d", i+1)
		}
	}
	sub.Stop()

	var sawFetched bool
	for _, a := range log.snapshot() {
		if a.Type == TypeFetched {
			sawFetched = true
		}
	}
	if !sawFetched {
		t.Error("Expected a snapshot dispatch after the transient error")
	}
}

func TestWatchStopIsIdempotentThroughStore(t *testing.T) {
	svc := &mockRoster{
		FetchEmployeesFunc: func(ctx context.Context, ownerUID string) (map[string]domain.Employee, error) {
			return map[string]domain.Employee{}, nil
		},
	}
	st := store.New(Reduce, State{})

	sub := Watch(context.Background(), svc, "owner-1", time.Hour, st.Dispatch, nil)
	sub.Stop()

	if got := st.State().Roster.Status(); got != async.StatusNotStarted {
		t.Errorf("Expected roster back to not-started after stop, got %v", got)
	}
}
