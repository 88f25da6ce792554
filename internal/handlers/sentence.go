package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sign2voice/sign2voice/internal/middleware"
	"github.com/sign2voice/sign2voice/internal/models"
	"github.com/sign2voice/sign2voice/internal/repo"
)

const defaultPageSize = 20

// ==========================
// SentenceHandler
// ==========================
type SentenceHandler struct {
	Repo *repo.SentenceRepo
}

type sentenceInput struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}

// ==========================
// Save (GUI endpoint, no auth required; OptionalAuth may still attach an owner)
// ==========================
func (h *SentenceHandler) Save(w http.ResponseWriter, r *http.Request) {
	s, ok := h.create(w, r, models.SourceGUI)
	if !ok {
		return
	}

	// The GUI shows back a compact record. It reads "timestamp", not "createdAt".
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Sentence saved successfully",
		"sentence": map[string]interface{}{
			"id":        s.ID,
			"text":      s.Text,
			"wordCount": s.WordCount,
			"sessionId": s.SessionID,
			"timestamp": s.CreatedAt,
		},
	})
}

// ==========================
// Create (authenticated web endpoint)
// ==========================
func (h *SentenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := h.create(w, r, models.SourceWeb)
	if !ok {
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Sentence saved successfully",
		"sentence": s,
	})
}

// create validates the input, recomputes the word count, defaults the session id,
// and persists. Returns ok=false when a response has already been written.
func (h *SentenceHandler) create(w http.ResponseWriter, r *http.Request, source string) (models.Sentence, bool) {
	var input sentenceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return models.Sentence{}, false
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		JSONError(w, "Sentence cannot be empty", http.StatusBadRequest)
		return models.Sentence{}, false
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var userID *int
	if user, ok := middleware.GetUser(r.Context()); ok {
		userID = &user.ID
	}

	s, err := h.Repo.Create(r.Context(), userID, text, models.CountWords(text), sessionID, source)
	if err != nil {
		slog.Error("save sentence failed", "err", err)
		JSONError(w, "Server error while saving sentence", http.StatusInternalServerError)
		return models.Sentence{}, false
	}

	return s, true
}

// ==========================
// List (authenticated, caller's own sentences, newest first, paginated)
// ==========================
func (h *SentenceHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, "Access denied. No token provided.", http.StatusUnauthorized)
		return
	}

	page := 1
	limit := defaultPageSize
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	sessionID := r.URL.Query().Get("sessionId")

	sentences, err := h.Repo.ListByUser(r.Context(), user.ID, sessionID, limit, (page-1)*limit)
	if err != nil {
		slog.Error("list sentences failed", "err", err)
		JSONError(w, "Server error while fetching sentences", http.StatusInternalServerError)
		return
	}

	total, err := h.Repo.CountByUser(r.Context(), user.ID, sessionID)
	if err != nil {
		slog.Error("count sentences failed", "err", err)
		JSONError(w, "Server error while fetching sentences", http.StatusInternalServerError)
		return
	}

	pages := (total + limit - 1) / limit

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sentences": sentences,
		"pagination": map[string]int{
			"current": page,
			"pages":   pages,
			"total":   total,
		},
	})
}

// ==========================
// List By Session (no auth; the GUI reads back its own submissions)
// ==========================
func (h *SentenceHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	sentences, err := h.Repo.ListBySession(r.Context(), sessionID)
	if err != nil {
		slog.Error("list session sentences failed", "err", err)
		JSONError(w, "Server error while fetching session sentences", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sentences": sentences})
}

// ==========================
// Delete (authenticated, owner-scoped)
// ==========================
func (h *SentenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, "Access denied. No token provided.", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid sentence id", http.StatusBadRequest)
		return
	}

	// Absent and foreign ids are indistinguishable to the caller.
	if err := h.Repo.DeleteOwned(r.Context(), id, user.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONError(w, "Sentence not found", http.StatusNotFound)
			return
		}
		slog.Error("delete sentence failed", "err", err)
		JSONError(w, "Server error while deleting sentence", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Sentence deleted successfully"})
}

// ==========================
// Stats (authenticated, caller-scoped; the client computes the aggregates)
// ==========================
func (h *SentenceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, "Access denied. No token provided.", http.StatusUnauthorized)
		return
	}

	sentences, err := h.Repo.ListAllByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("sentence stats failed", "err", err)
		JSONError(w, "Server error while fetching stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": sentences})
}
