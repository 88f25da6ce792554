package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gui.sh")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestGUI_Launch_Ready(t *testing.T) {
	script := writeScript(t, "echo SIGN2VOICE_READY\nsleep 1\n")
	g := &GUI{Python: "sh", Script: script, Timeout: 5 * time.Second}

	outcome, err := g.Launch(context.Background())
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if outcome != OutcomeReady {
		t.Errorf("outcome: got %v, want OutcomeReady", outcome)
	}
}

func TestGUI_Launch_CompletedBeforeMarker(t *testing.T) {
	script := writeScript(t, "echo starting up\n")
	g := &GUI{Python: "sh", Script: script, Timeout: 5 * time.Second}

	outcome, err := g.Launch(context.Background())
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if outcome != OutcomeCompleted {
		t.Errorf("outcome: got %v, want OutcomeCompleted", outcome)
	}
}

func TestGUI_Launch_Timeout(t *testing.T) {
	script := writeScript(t, "sleep 5\n")
	g := &GUI{Python: "sh", Script: script, Timeout: 100 * time.Millisecond}

	_, err := g.Launch(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got: %v", err)
	}
}

func TestGUI_Launch_ProcessError(t *testing.T) {
	script := writeScript(t, "exit 3\n")
	g := &GUI{Python: "sh", Script: script, Timeout: 5 * time.Second}

	_, err := g.Launch(context.Background())
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestGUI_Launch_SpawnError(t *testing.T) {
	g := &GUI{Python: "/nonexistent-interpreter", Script: "whatever.py", Timeout: time.Second}

	_, err := g.Launch(context.Background())
	if err == nil {
		t.Fatal("expected error when the interpreter does not exist")
	}
}
