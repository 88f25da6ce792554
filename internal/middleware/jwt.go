package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sign2voice/sign2voice/internal/models"
	"github.com/sign2voice/sign2voice/internal/repo"
)

type key string

const (
	userKey  key = "user"
	adminKey key = "admin"
)

// RequireAuth rejects requests without a valid bearer token for a known user.
// The resolved user is stored in the request context; handlers read it with GetUser.
func RequireAuth(secret []byte, users *repo.UserRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				jsonError(w, "Access denied. No token provided.", http.StatusUnauthorized)
				return
			}

			id, err := parseSubject(tokenStr, secret)
			if err != nil {
				jsonError(w, "Invalid token.", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				jsonError(w, "Invalid token. User not found.", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth attaches the user when a valid token is present and continues
// anonymously otherwise. Token errors are swallowed.
func OptionalAuth(secret []byte, users *repo.UserRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenStr := bearerToken(r); tokenStr != "" {
				if id, err := parseSubject(tokenStr, secret); err == nil {
					if user, err := users.GetByID(r.Context(), id); err == nil {
						r = r.WithContext(WithUser(r.Context(), user))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is RequireAuth against the admins table.
func RequireAdmin(secret []byte, admins *repo.AdminRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				jsonError(w, "No token provided", http.StatusUnauthorized)
				return
			}

			id, err := parseSubject(tokenStr, secret)
			if err != nil {
				jsonError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			admin, err := admins.GetByID(r.Context(), id)
			if err != nil {
				jsonError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated user stored by RequireAuth or OptionalAuth.
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithAdmin returns a context carrying the authenticated admin.
func WithAdmin(ctx context.Context, admin *models.Admin) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// GetAdmin returns the authenticated admin stored by RequireAdmin.
func GetAdmin(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(adminKey).(*models.Admin)
	return admin, ok
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// parseSubject validates the token (signature, expiry, HS256 only) and returns the
// identity id carried in the "id" claim.
func parseSubject(tokenStr string, secret []byte) (int, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return int(id), nil
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
