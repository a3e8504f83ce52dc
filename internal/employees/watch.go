package employees

import (
	"context"
	"time"

	"go.uber.org/zap"

	"employee-manager/internal/backend"
	"employee-manager/internal/store"
)

const defaultInterval = 15 * time.Second

// Subscription is a running roster watch. Stop cancels the poll loop and
// dispatches UNSUBSCRIBE; it is safe to call more than once.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop ends the subscription and waits for the poll loop to exit.
func (s *Subscription) Stop() {
	s.cancel()
	<-s.done
}

// Watch mirrors the remote employee collection into the store. It dispatches
// WATCH_START immediately, then fetches the owner's collection on every tick
// and dispatches each snapshot as EMPLOYEES_FETCHED. Fetch errors are logged
// and retried on the next tick; the slice keeps its last snapshot meanwhile.
// When the subscription stops it dispatches UNSUBSCRIBE.
func Watch(ctx context.Context, svc backend.Roster, ownerUID string, interval time.Duration, dispatch store.Dispatch, log *zap.SugaredLogger) *Subscription {
	if interval <= 0 {
		interval = defaultInterval
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	dispatch(store.Action{Type: TypeWatchStart})

	go func() {
		defer close(sub.done)
		defer dispatch(store.Action{Type: TypeUnsubscribe})

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			snapshot, err := svc.FetchEmployees(ctx, ownerUID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Errorw("roster fetch failed", "owner", ownerUID, "error", err)
			} else {
				dispatch(Fetched(snapshot))
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return sub
}
