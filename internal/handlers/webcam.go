package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sign2voice/sign2voice/internal/launcher"
	"github.com/sign2voice/sign2voice/internal/metrics"
	"github.com/sign2voice/sign2voice/internal/middleware"
)

// WebcamHandler opens the desktop recognizer tool on the server host. The tool
// is an external process; this handler only relays the launch outcome.
type WebcamHandler struct {
	Launcher launcher.Launcher
}

func (h *WebcamHandler) Open(w http.ResponseWriter, r *http.Request) {
	if user, ok := middleware.GetUser(r.Context()); ok {
		slog.Info("webcam launch requested", "user_id", user.ID)
	} else {
		slog.Info("webcam launch requested", "user_id", nil)
	}

	metrics.IncGUILaunchesRunning()
	defer metrics.DecGUILaunchesRunning()

	outcome, err := h.Launcher.Launch(r.Context())
	if err != nil {
		if errors.Is(err, launcher.ErrTimeout) {
			metrics.IncGUILaunchesTotal("timeout")
			JSONError(w, "Python script initialization timeout", http.StatusInternalServerError)
			return
		}
		metrics.IncGUILaunchesTotal("error")
		slog.Error("webcam launch failed", "err", err)
		JSONError(w, "Failed to launch Python script", http.StatusInternalServerError)
		return
	}

	switch outcome {
	case launcher.OutcomeReady:
		metrics.IncGUILaunchesTotal("ready")
		writeJSON(w, http.StatusOK, map[string]string{"message": "Webcam Translator launched and ready"})
	default:
		metrics.IncGUILaunchesTotal("completed")
		writeJSON(w, http.StatusOK, map[string]string{"message": "Python script completed"})
	}
}
