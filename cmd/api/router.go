package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sign2voice/sign2voice/internal/config"
	"github.com/sign2voice/sign2voice/internal/handlers"
	"github.com/sign2voice/sign2voice/internal/launcher"
	mw "github.com/sign2voice/sign2voice/internal/middleware"
	"github.com/sign2voice/sign2voice/internal/repo"
)

// newRouter wires repositories, handlers, and the middleware chain.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	userRepo := repo.NewUserRepo(db)
	adminRepo := repo.NewAdminRepo(db)
	sentenceRepo := repo.NewSentenceRepo(db)
	historyRepo := repo.NewAdminHistoryRepo(db)

	secret := []byte(cfg.JWTSecret)

	authHandler := &handlers.AuthHandler{UserRepo: userRepo, Secret: secret}
	adminHandler := &handlers.AdminHandler{
		AdminRepo:    adminRepo,
		UserRepo:     userRepo,
		SentenceRepo: sentenceRepo,
		HistoryRepo:  historyRepo,
		Secret:       secret,
	}
	sentenceHandler := &handlers.SentenceHandler{Repo: sentenceRepo}
	webcamHandler := &handlers.WebcamHandler{
		Launcher: &launcher.GUI{
			Python:  cfg.PythonPath,
			Script:  cfg.GUIScript,
			Timeout: time.Duration(cfg.LaunchTimeoutSeconds) * time.Second,
		},
	}
	healthHandler := &handlers.HealthHandler{DB: db, Start: time.Now()}

	requireAuth := mw.RequireAuth(secret, userRepo)
	optionalAuth := mw.OptionalAuth(secret, userRepo)
	requireAdmin := mw.RequireAdmin(secret, adminRepo)
	authLimiter := mw.AuthRateLimiter()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.RequestLog)
	r.Use(mw.Recoverer)
	r.Use(mw.Prometheus)
	r.Use(mw.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(mw.CORS(cfg.CORSAllowedOrigins))
	r.Use(mw.MaxBytes(mw.DefaultMaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "Route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "Route not found", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter.Middleware).Post("/register", authHandler.Register)
			r.With(authLimiter.Middleware).Post("/login", authHandler.Login)
			r.With(requireAuth).Get("/profile", authHandler.Profile)
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(authLimiter.Middleware).Post("/login", adminHandler.Login)
		})

		r.Route("/admin-panel", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/users", adminHandler.ListUsers)
			r.Get("/user-sentences", adminHandler.ListUserSentences)
			r.Get("/history", adminHandler.History)
		})

		r.Route("/sentences", func(r chi.Router) {
			// GUI endpoints, no auth required; a valid token still attaches an owner.
			r.With(optionalAuth).Post("/save", sentenceHandler.Save)
			r.Get("/session/{sessionId}", sentenceHandler.ListBySession)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", sentenceHandler.Create)
				r.Get("/", sentenceHandler.List)
				r.Get("/stats", sentenceHandler.Stats)
				r.Delete("/{id}", sentenceHandler.Delete)
			})
		})

		r.With(optionalAuth).Post("/open-webcam", webcamHandler.Open)
	})

	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
