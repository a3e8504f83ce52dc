package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Identity service
	AuthBaseURL string
	AuthAPIKey  string

	// Roster database
	DatabaseBaseURL string
	WatchInterval   time.Duration

	// Login credentials for the CLI tools
	Email    string
	Password string

	// Payroll drop (SFTP)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool

	LogLevel string
}

func Load() Config {
	return Config{
		AuthBaseURL: getenv("AUTH_BASE_URL", "https://identitytoolkit.googleapis.com"),
		AuthAPIKey:  os.Getenv("AUTH_API_KEY"),

		DatabaseBaseURL: os.Getenv("DATABASE_BASE_URL"),
		WatchInterval:   getenvDuration("WATCH_INTERVAL", 15*time.Second),

		Email:    os.Getenv("EMPMGR_EMAIL"),
		Password: os.Getenv("EMPMGR_PASSWORD"),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),

		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
