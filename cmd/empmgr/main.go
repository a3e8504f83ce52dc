// Command empmgr signs in against the identity service and mirrors the
// employee roster into a local store, printing every snapshot it receives.
// Credentials and endpoints come from the environment (or a .env file).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"employee-manager/internal/app"
	"employee-manager/internal/async"
	"employee-manager/internal/auth"
	"employee-manager/internal/backend/rest"
	"employee-manager/internal/config"
	"employee-manager/internal/employees"
	"employee-manager/internal/export"
	"employee-manager/internal/logger"
)

// consoleNavigator stands in for the mobile navigation stack.
type consoleNavigator struct {
	screens chan string
}

func (n *consoleNavigator) Navigate(screen string) {
	n.screens <- screen
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Email == "" || cfg.Password == "" {
		log.Fatal("missing env vars: EMPMGR_EMAIL / EMPMGR_PASSWORD")
	}
	if cfg.DatabaseBaseURL == "" {
		log.Fatal("missing env var: DATABASE_BASE_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := app.New()
	identity := rest.NewIdentity(cfg.AuthBaseURL, cfg.AuthAPIKey)
	nav := &consoleNavigator{screens: make(chan string, 1)}

	log.Infow("signing in", "email", cfg.Email)
	st.Do(ctx, auth.Login(identity, nav, cfg.Email, cfg.Password))

	state := st.State()
	if state.Auth.User == nil {
		log.Fatalw("login failed", "message", state.Auth.Login.ErrMessage())
	}
	log.Infow("signed in", "uid", state.Auth.User.UID, "screen", <-nav.screens)

	roster := rest.NewRoster(cfg.DatabaseBaseURL)
	roster.AuthToken = state.Auth.User.IDToken

	unsubscribe := st.Subscribe(func(s app.State) {
		snapshot, ok := s.Employees.Roster.Get()
		if !ok {
			return
		}
		fmt.Printf("--- roster (%d employees) ---\n", len(snapshot))
		for _, id := range export.SortedIDs(snapshot) {
			e := snapshot[id]
			fmt.Printf("%s\t%s\t%s\t%s\n", id, e.Name, e.Phone, e.Shift)
		}
	})
	defer unsubscribe()

	sub := employees.Watch(ctx, roster, state.Auth.User.UID, cfg.WatchInterval, st.Dispatch, log)

	<-ctx.Done()
	sub.Stop()

	if st.State().Employees.Roster.Status() != async.StatusNotStarted {
		log.Warn("roster subscription did not unwind cleanly")
	}
	log.Info("bye")
}
