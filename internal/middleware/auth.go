package middleware

import (
	"context"
	"net/http"
	"strconv"

	"tickethub/internal/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	// UserContextKey is the request context key the signed-in user lives under
	UserContextKey contextKey = "user"

	// SessionName is the cookie the storefront session lives in
	SessionName = "session"

	// UserIDSessionKey is the session slot holding the signed-in user's ID
	UserIDSessionKey = "user_id"
)

// UserResolver turns a session user ID into the current user
type UserResolver interface {
	GetCurrentUser(userID int) (*models.User, error)
}

// AuthMiddleware loads the signed-in user from the session into the request
// context
type AuthMiddleware struct {
	resolver UserResolver
	store    sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(resolver UserResolver, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		store:    store,
	}
}

// LoadUser resolves the session's user and adds it to the request context.
// Requests without a valid session continue anonymously.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := sessionUserID(session)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.resolver.GetCurrentUser(userID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// ContextWithUser returns a context carrying the signed-in user
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOrganizer rejects requests from users without the organizer role
func RequireOrganizer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		if !user.IsOrganizer() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext returns the signed-in user, or nil for anonymous
// requests
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserContextKey).(*models.User)
	return user
}

// sessionUserID extracts the user ID from a session, tolerating the type
// conversions session storage applies
func sessionUserID(session *sessions.Session) (int, bool) {
	raw, exists := session.Values[UserIDSessionKey]
	if !exists {
		return 0, false
	}

	switch v := raw.(type) {
	case int:
		return v, v != 0
	case float64:
		return int(v), int(v) != 0
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed, parsed != 0
		}
	}

	return 0, false
}
