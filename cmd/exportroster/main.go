// Command exportroster signs in, fetches the employee roster once, and writes
// it out as a payroll CSV plus a compressed archival snapshot. With -sftp it
// also uploads both files to the configured payroll drop.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"employee-manager/internal/auth"
	"employee-manager/internal/backend/rest"
	"employee-manager/internal/config"
	"employee-manager/internal/export"
	"employee-manager/internal/sftpclient"
	"employee-manager/internal/store"
)

type noopNavigator struct{}

func (noopNavigator) Navigate(screen string) {}

func main() {
	var (
		outPath    = flag.String("out", "roster.csv", "output csv path")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated files via SFTP")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Email == "" || cfg.Password == "" {
		log.Fatal("missing env vars: EMPMGR_EMAIL / EMPMGR_PASSWORD")
	}
	if cfg.DatabaseBaseURL == "" {
		log.Fatal("missing env var: DATABASE_BASE_URL")
	}

	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	// Login through the same flow the app uses, with a recording dispatch
	// instead of a full store.
	identity := rest.NewIdentity(cfg.AuthBaseURL, cfg.AuthAPIKey)
	authState := auth.State{}
	dispatch := func(a store.Action) {
		authState = auth.Reduce(authState, a)
	}
	auth.Login(identity, noopNavigator{}, cfg.Email, cfg.Password)(ctx, dispatch)
	if authState.User == nil {
		log.Fatalf("login failed: %s", authState.Login.ErrMessage())
	}
	log.Printf("signed in as %s", authState.User.Email)

	roster := rest.NewRoster(cfg.DatabaseBaseURL)
	roster.AuthToken = authState.User.IDToken

	snapshot, err := roster.FetchEmployees(ctx, authState.User.UID)
	if err != nil {
		log.Fatalf("fetch employees: %v", err)
	}
	log.Printf("fetched %d employees", len(snapshot))

	var csvBuf bytes.Buffer
	if err := export.WriteRosterCSV(&csvBuf, snapshot); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	if err := os.WriteFile(*outPath, csvBuf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *outPath)

	takenAt := time.Now().UTC()
	archiveName := export.SnapshotFileName(authState.User.UID, takenAt)
	var archiveBuf bytes.Buffer
	if err := export.WriteSnapshot(&archiveBuf, export.Snapshot{
		OwnerUID:  authState.User.UID,
		TakenAt:   takenAt,
		Employees: snapshot,
	}); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}
	archivePath := filepath.Join(filepath.Dir(*outPath), archiveName)
	if err := os.WriteFile(archivePath, archiveBuf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", archivePath)

	if !*uploadSFTP {
		fmt.Println("OK (no upload requested)")
		return
	}

	sftpCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}

	if err := sftpclient.Upload(ctx, sftpCfg, bytes.NewReader(csvBuf.Bytes()), filepath.Base(*outPath)); err != nil {
		log.Fatalf("upload csv: %v", err)
	}
	if err := sftpclient.Upload(ctx, sftpCfg, bytes.NewReader(archiveBuf.Bytes()), archiveName); err != nil {
		log.Fatalf("upload snapshot: %v", err)
	}
	fmt.Println("OK: uploaded", filepath.Base(*outPath), "and", archiveName)
}
