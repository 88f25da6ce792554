package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sign2voice/sign2voice/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// TestAPI_LoginThenSaveSentence is an integration test: it builds the full router
// with a sqlmock-backed DB, logs in to get a JWT, then posts a sentence with the token.
func TestAPI_LoginThenSaveSentence(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Abc123!@"), bcrypt.DefaultCost)

	// Login: GetByEmail("a@x.com")
	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(1, "alice", "a@x.com", string(hash), time.Now()))

	// POST /api/sentences: RequireAuth resolves the user by id, then the insert runs.
	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(1, "alice", "a@x.com", string(hash), time.Now()))
	mock.ExpectQuery(`INSERT INTO sentences`).
		WithArgs(1, "hello world", 2, sqlmock.AnyArg(), "web").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "text", "word_count", "session_id", "source", "created_at"}).
			AddRow(1, 1, "hello world", 2, "sess", "web", time.Now()))

	cfg := config.Config{JWTSecret: "test-secret-for-integration"}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	// 1) Login
	loginBody, _ := json.Marshal(map[string]string{"email": "a@x.com", "password": "Abc123!@"})
	loginResp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(loginBody))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("login status: got %d, want 200", loginResp.StatusCode)
	}
	var loginOut struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(loginResp.Body).Decode(&loginOut); err != nil || loginOut.Token == "" {
		t.Fatalf("login response: %v", err)
	}

	// 2) POST /api/sentences with Bearer token
	sentenceBody, _ := json.Marshal(map[string]string{"text": "hello world"})
	req, _ := http.NewRequest("POST", srv.URL+"/api/sentences", bytes.NewReader(sentenceBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+loginOut.Token)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("sentence request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /api/sentences status: got %d, want 201", resp.StatusCode)
	}
	var out struct {
		Sentence struct {
			WordCount int `json:"wordCount"`
		} `json:"sentence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode sentence: %v", err)
	}
	if out.Sentence.WordCount != 2 {
		t.Errorf("wordCount: got %d, want 2", out.Sentence.WordCount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// TestAPI_Health is a quick smoke test for the health endpoint.
func TestAPI_Health(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x"}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/health status: got %d, want 200", resp.StatusCode)
	}
	var out struct {
		Status string  `json:"status"`
		Uptime float64 `json:"uptime"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if out.Status != "OK" {
		t.Errorf("status: got %q, want OK", out.Status)
	}

	// Uptime never goes backwards within one process.
	resp2, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("second health request: %v", err)
	}
	defer resp2.Body.Close()
	var out2 struct {
		Uptime float64 `json:"uptime"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&out2); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if out2.Uptime < out.Uptime {
		t.Errorf("uptime decreased: %f -> %f", out.Uptime, out2.Uptime)
	}
}

// TestAPI_Ready checks that /ready pings the DB and returns 200 when DB is reachable.
func TestAPI_Ready(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectPing()

	cfg := config.Config{JWTSecret: "x"}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("ready request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /ready status: got %d, want 200", resp.StatusCode)
	}
}

// TestAPI_RouteNotFound checks the JSON fallback for unmatched routes.
func TestAPI_RouteNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x"}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/no-such-route")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out["error"] != "Route not found" {
		t.Errorf("unexpected error: %q", out["error"])
	}
}

// TestAPI_MethodMismatchFallsToNotFound checks that a wrong method on a known path
// gets the same JSON fallback as an unknown path.
func TestAPI_MethodMismatchFallsToNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x"}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	// /api/sentences/save only accepts POST.
	resp, err := http.Get(srv.URL + "/api/sentences/save")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out["error"] != "Route not found" {
		t.Errorf("unexpected error: %q", out["error"])
	}
}

// TestAPI_ProfileRequiresToken checks that protected routes reject anonymous calls.
func TestAPI_ProfileRequiresToken(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x"}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/auth/profile")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", resp.StatusCode)
	}
}
