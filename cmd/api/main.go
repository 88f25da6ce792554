package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/sign2voice/sign2voice/internal/config"
	"github.com/sign2voice/sign2voice/internal/db"
	"github.com/sign2voice/sign2voice/internal/repo"
	"github.com/sign2voice/sign2voice/internal/scheduler"
)

func main() {

	// Load configuration
	cfg := config.Load()

	setupLogging(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.JWTSecret == "supersecretkey" {
		log.Fatal("JWT_SECRET must be set in prod")
	}

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	slog.Info("connected to the database", "host", cfg.DBHost, "db", cfg.DBName)

	// Apply pending migrations
	if err := db.Run(db.URL(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Retention purge for anonymous GUI sentences (no-op unless RETENTION_DAYS > 0)
	go scheduler.Run(repo.NewSentenceRepo(database), cfg.RetentionDays, cfg.RetentionCron)

	r := newRouter(database, cfg)

	// Start server LAST
	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "addr", addr)
		err = http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		slog.Info("starting server", "addr", addr)
		err = http.ListenAndServe(addr, r)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLogging(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}
