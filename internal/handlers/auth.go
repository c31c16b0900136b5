package handlers

import (
	"log"
	"net/http"
	"strings"

	"tickethub/internal/middleware"
	"tickethub/internal/services"

	"github.com/gorilla/sessions"
)

// AuthHandler handles authentication endpoints. Credential checks are
// delegated to the hosted provider; the handler only manages the local
// session.
type AuthHandler struct {
	authService *services.AuthService
	store       sessions.Store
	logger      *log.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store sessions.Store, logger *log.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		logger:      logger,
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account with the auth provider
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result := h.authService.SignUp(req.Email, req.Password, req.FullName)
	if !result.Success {
		respondError(w, http.StatusUnprocessableEntity, result.Error)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// SignIn authenticates against the provider and establishes a session
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result := h.authService.SignIn(req.Email, req.Password)
	if !result.Success {
		respondError(w, http.StatusUnauthorized, result.Error)
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// a stale or tampered cookie still yields a usable new session
		h.logger.Printf("session decode failed during sign in: %v", err)
	}
	session.Values[middleware.UserIDSessionKey] = result.User.ID
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SignOut revokes the provider session and clears the local one
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	result := h.authService.SignOut()
	if !result.Success {
		h.logger.Printf("provider sign out failed: %s", result.Error)
	}

	session, _ := h.store.Get(r, middleware.SessionName)
	delete(session.Values, middleware.UserIDSessionKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ResetPassword asks the provider to send a password reset email
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	result := h.authService.ResetPassword(req.Email)
	if !result.Success {
		respondError(w, http.StatusUnprocessableEntity, result.Error)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// UpdatePassword sets a new password for the signed-in user
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	result := h.authService.UpdatePassword(req.Password)
	if !result.Success {
		respondError(w, http.StatusUnprocessableEntity, result.Error)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// OAuth returns the provider's authorization URL for the requested provider
func (h *AuthHandler) OAuth(w http.ResponseWriter, r *http.Request) {
	provider := r.URL.Query().Get("provider")
	if provider == "" {
		respondError(w, http.StatusBadRequest, "provider is required")
		return
	}

	authorizeURL, result := h.authService.SignInWithOAuth(provider)
	if !result.Success {
		respondError(w, http.StatusUnprocessableEntity, result.Error)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authorize_url": authorizeURL,
	})
}

// Me returns the signed-in user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
