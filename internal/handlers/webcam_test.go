package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sign2voice/sign2voice/internal/launcher"
)

// fakeLauncher settles with a canned outcome instead of spawning a process.
type fakeLauncher struct {
	outcome launcher.Outcome
	err     error
}

func (f *fakeLauncher) Launch(ctx context.Context) (launcher.Outcome, error) {
	return f.outcome, f.err
}

func TestWebcamHandler_Ready(t *testing.T) {
	h := &WebcamHandler{Launcher: &fakeLauncher{outcome: launcher.OutcomeReady}}

	req := httptest.NewRequest("POST", "/api/open-webcam", nil)
	rr := httptest.NewRecorder()
	h.Open(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Open status: got %d, want 200", rr.Code)
	}
	var out map[string]string
	json.NewDecoder(rr.Body).Decode(&out)
	if out["message"] != "Webcam Translator launched and ready" {
		t.Errorf("unexpected message: %q", out["message"])
	}
}

func TestWebcamHandler_CompletedBeforeMarker(t *testing.T) {
	h := &WebcamHandler{Launcher: &fakeLauncher{outcome: launcher.OutcomeCompleted}}

	req := httptest.NewRequest("POST", "/api/open-webcam", nil)
	rr := httptest.NewRecorder()
	h.Open(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Open status: got %d, want 200", rr.Code)
	}
	var out map[string]string
	json.NewDecoder(rr.Body).Decode(&out)
	if out["message"] != "Python script completed" {
		t.Errorf("unexpected message: %q", out["message"])
	}
}

func TestWebcamHandler_Timeout(t *testing.T) {
	h := &WebcamHandler{Launcher: &fakeLauncher{err: launcher.ErrTimeout}}

	req := httptest.NewRequest("POST", "/api/open-webcam", nil)
	rr := httptest.NewRecorder()
	h.Open(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Open status: got %d, want 500", rr.Code)
	}
	var out map[string]string
	json.NewDecoder(rr.Body).Decode(&out)
	if out["error"] != "Python script initialization timeout" {
		t.Errorf("unexpected error: %q", out["error"])
	}
}

func TestWebcamHandler_SpawnError(t *testing.T) {
	h := &WebcamHandler{Launcher: &fakeLauncher{err: errors.New("exec: not found")}}

	req := httptest.NewRequest("POST", "/api/open-webcam", nil)
	rr := httptest.NewRecorder()
	h.Open(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Open status: got %d, want 500", rr.Code)
	}
	var out map[string]string
	json.NewDecoder(rr.Body).Decode(&out)
	if out["error"] != "Failed to launch Python script" {
		t.Errorf("unexpected error: %q", out["error"])
	}
}
