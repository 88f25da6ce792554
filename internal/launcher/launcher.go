package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ReadyMarker is the line the recognizer GUI prints on stdout once its webcam
// pipeline is up.
const ReadyMarker = "SIGN2VOICE_READY"

// DefaultTimeout bounds how long Launch waits for the readiness marker.
const DefaultTimeout = 30 * time.Second

// ErrTimeout is returned when the GUI never signals readiness within the timeout.
var ErrTimeout = errors.New("gui initialization timeout")

// Outcome describes how a launch settled.
type Outcome int

const (
	// OutcomeReady means the readiness marker was seen on stdout.
	OutcomeReady Outcome = iota
	// OutcomeCompleted means the process exited cleanly before printing the marker.
	OutcomeCompleted
)

// Launcher is the capability the API depends on to open the desktop recognizer
// tool. The tool itself is an opaque external process.
type Launcher interface {
	Launch(ctx context.Context) (Outcome, error)
}

// GUI launches the recognizer desktop tool as a subprocess and watches its
// stdout for the readiness marker. Exactly one outcome is reported per call;
// subprocess output after the outcome settles is still logged.
type GUI struct {
	Python  string
	Script  string
	Timeout time.Duration
}

func (g *GUI) Launch(ctx context.Context) (Outcome, error) {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	cmd := exec.Command(g.Python, g.Script)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start gui: %w", err)
	}

	ready := make(chan struct{}, 1)
	exited := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := scanner.Text()
			slog.Info("gui stdout", "line", line)
			if strings.Contains(line, ReadyMarker) {
				select {
				case ready <- struct{}{}:
				default:
				}
			}
		}
	}()

	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			slog.Warn("gui stderr", "line", scanner.Text())
		}
	}()

	go func() {
		err := cmd.Wait()
		slog.Info("gui process exited", "err", err)
		exited <- err
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	// First outcome wins. The GUI keeps running after OutcomeReady; the wait
	// goroutine reaps it whenever the user closes the window.
	select {
	case <-ready:
		return OutcomeReady, nil
	case err := <-exited:
		if err != nil {
			return 0, fmt.Errorf("gui process: %w", err)
		}
		return OutcomeCompleted, nil
	case <-timer.C:
		return 0, ErrTimeout
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
