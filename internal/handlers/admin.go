package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sign2voice/sign2voice/internal/middleware"
	"github.com/sign2voice/sign2voice/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenTTL is the lifetime of an admin session token.
const adminTokenTTL = 7 * 24 * time.Hour

// ==========================
// AdminHandler
// ==========================
// There is no admin registration endpoint; accounts are provisioned out-of-band
// through the CLI.
type AdminHandler struct {
	AdminRepo    *repo.AdminRepo
	UserRepo     *repo.UserRepo
	SentenceRepo *repo.SentenceRepo
	HistoryRepo  *repo.AdminHistoryRepo
	Secret       []byte
}

// ==========================
// Admin Login
// ==========================
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	admin, err := h.AdminRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := signToken(h.Secret, jwt.MapClaims{"id": admin.ID, "role": admin.Role}, adminTokenTTL)
	if err != nil {
		JSONError(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	h.log(r, admin.ID, "login", "")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}

// ==========================
// List Users (admin panel; passwords excluded at the query level)
// ==========================
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.List(r.Context())
	if err != nil {
		slog.Error("admin panel: list users failed", "err", err)
		JSONError(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}

	if admin, ok := middleware.GetAdmin(r.Context()); ok {
		h.log(r, admin.ID, "viewed users", "")
	}

	writeJSON(w, http.StatusOK, users)
}

// ==========================
// List User Sentences (admin panel; owner email/username inlined)
// ==========================
func (h *AdminHandler) ListUserSentences(w http.ResponseWriter, r *http.Request) {
	sentences, err := h.SentenceRepo.ListAllWithUsers(r.Context())
	if err != nil {
		slog.Error("admin panel: list user sentences failed", "err", err)
		JSONError(w, "Failed to fetch sentence history", http.StatusInternalServerError)
		return
	}

	if admin, ok := middleware.GetAdmin(r.Context()); ok {
		h.log(r, admin.ID, "viewed user sentences", "")
	}

	writeJSON(w, http.StatusOK, sentences)
}

// ==========================
// Admin Action History
// ==========================
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}

	actions, err := h.HistoryRepo.List(r.Context(), limit, offset)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, actions)
}

// log records an admin action; audit failures never fail the request.
func (h *AdminHandler) log(r *http.Request, adminID int, action, targetUser string) {
	if h.HistoryRepo == nil {
		return
	}
	if err := h.HistoryRepo.Log(r.Context(), adminID, action, targetUser); err != nil {
		slog.Error("admin history log failed", "action", action, "err", err)
	}
}
