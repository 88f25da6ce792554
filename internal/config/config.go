package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int

	JWTSecret string

	// Env is "dev" (default) or "prod". When "prod", JWT_SECRET must be set and not the default.
	Env string

	// PythonPath is the python interpreter used to launch the recognizer GUI.
	PythonPath string
	// GUIScript is the path to the recognizer GUI entry point (gui_main.py).
	GUIScript string
	// LaunchTimeoutSeconds bounds how long /api/open-webcam waits for the GUI
	// readiness marker (default 30).
	LaunchTimeoutSeconds int

	// RetentionDays controls purging of anonymous GUI sentences. 0 disables the purge.
	RetentionDays int
	// RetentionCron is the cron expression for the purge job (default "0 3 * * *").
	RetentionCron string

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the API listens with plain HTTP.
	TLSCertFile string
	TLSKeyFile  string

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string

	// CORSAllowedOrigins is a list of origins allowed for CORS (e.g. the React client
	// at http://localhost:5173). Set via CORS_ALLOWED_ORIGINS (comma-separated).
	// When empty, no CORS headers are sent (same-origin only).
	CORSAllowedOrigins []string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "5000"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "sign2voice"),
		DBUser: getEnv("DB_USER", "s2vuser"),
		DBPass: getEnv("DB_PASS", "s2vpass"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		JWTSecret: getEnv("JWT_SECRET", "supersecretkey"),
		Env:       getEnv("ENV", "dev"),

		// Default "python" works when the interpreter is in PATH; the GUI script
		// default matches where the desktop tool lives relative to the server.
		PythonPath:           getEnv("PYTHON_PATH", "python"),
		GUIScript:            getEnv("GUI_SCRIPT", "../gui_main.py"),
		LaunchTimeoutSeconds: getEnvInt("LAUNCH_TIMEOUT_SECONDS", 30),

		RetentionDays: getEnvInt("RETENTION_DAYS", 0),
		RetentionCron: getEnv("RETENTION_CRON", "0 3 * * *"),

		// Optional TLS configuration for HTTPS.
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		LogFormat: getEnv("LOG_FORMAT", "text"),

		CORSAllowedOrigins: parseCORSOrigins(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
}

// parseCORSOrigins splits a comma-separated list of origins and trims spaces. Empty strings are omitted.
func parseCORSOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
