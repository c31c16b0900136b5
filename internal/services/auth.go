package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tickethub/internal/models"
)

// UserStore is the local projection of provider identities
type UserStore interface {
	GetByID(id int) (*models.User, error)
	UpsertByEmail(email, fullName string, role models.UserRole) (*models.User, error)
}

// AuthResult is the throws-free result object every auth operation returns.
// Error is empty on success.
type AuthResult struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// AuthService delegates identity management to the hosted auth provider.
// The storefront never stores credentials; it forwards requests and keeps a
// local projection of the signed-in user for sessions.
type AuthService struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	userRepo UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(baseURL, apiKey string, userRepo UserStore) *AuthService {
	return &AuthService{
		baseURL:  baseURL,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		userRepo: userRepo,
	}
}

// providerResponse is the shape the hosted provider answers with
type providerResponse struct {
	Error    string `json:"error"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// SignUp registers a new account with the provider
func (s *AuthService) SignUp(email, password, fullName string) *AuthResult {
	resp, err := s.post("/signup", map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	})
	if err != nil {
		return &AuthResult{Error: err.Error()}
	}

	if resp.Error != "" {
		return &AuthResult{Error: resp.Error}
	}

	return &AuthResult{Success: true}
}

// SignIn authenticates with the provider and refreshes the local user
// projection on success
func (s *AuthService) SignIn(email, password string) *AuthResult {
	resp, err := s.post("/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return &AuthResult{Error: err.Error()}
	}

	if resp.Error != "" {
		return &AuthResult{Error: resp.Error}
	}

	user, err := s.userRepo.UpsertByEmail(resp.Email, resp.FullName, models.RoleAttendee)
	if err != nil {
		return &AuthResult{Error: fmt.Sprintf("failed to record user: %v", err)}
	}

	return &AuthResult{Success: true, User: user}
}

// SignOut revokes the provider session
func (s *AuthService) SignOut() *AuthResult {
	if _, err := s.post("/logout", nil); err != nil {
		return &AuthResult{Error: err.Error()}
	}
	return &AuthResult{Success: true}
}

// ResetPassword asks the provider to send a password reset email
func (s *AuthService) ResetPassword(email string) *AuthResult {
	resp, err := s.post("/recover", map[string]string{"email": email})
	if err != nil {
		return &AuthResult{Error: err.Error()}
	}

	if resp.Error != "" {
		return &AuthResult{Error: resp.Error}
	}

	return &AuthResult{Success: true}
}

// UpdatePassword sets a new password for the current provider session
func (s *AuthService) UpdatePassword(password string) *AuthResult {
	resp, err := s.post("/user/password", map[string]string{"password": password})
	if err != nil {
		return &AuthResult{Error: err.Error()}
	}

	if resp.Error != "" {
		return &AuthResult{Error: resp.Error}
	}

	return &AuthResult{Success: true}
}

// SignInWithOAuth returns the provider's authorization URL for an OAuth flow
func (s *AuthService) SignInWithOAuth(provider string) (string, *AuthResult) {
	authorizeURL := fmt.Sprintf("%s/authorize?provider=%s", s.baseURL, url.QueryEscape(provider))
	return authorizeURL, &AuthResult{Success: true}
}

// GetCurrentUser returns the local projection for a session's user ID
func (s *AuthService) GetCurrentUser(userID int) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// post sends a JSON request to the provider and decodes the response
func (s *AuthService) post(path string, body map[string]string) (*providerResponse, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer httpResp.Body.Close()

	resp := &providerResponse{}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if resp.Error == "" && httpResp.StatusCode >= 400 {
		resp.Error = fmt.Sprintf("auth provider returned status %d", httpResp.StatusCode)
	}

	return resp, nil
}
