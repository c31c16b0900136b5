package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleAttendee  UserRole = "user"
	RoleOrganizer UserRole = "organizer"
)

// User represents an authenticated session subject. Identity itself lives in
// the hosted auth provider; this is the local projection of it.
type User struct {
	ID        int       `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	Role      UserRole  `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

var (
	// Email validation regex
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates the user data
func (u *User) Validate() error {
	if err := validateUserEmail(u.Email); err != nil {
		return err
	}

	if err := validateUserName(u.FullName); err != nil {
		return err
	}

	return validateUserRole(u.Role)
}

// validateUserEmail validates a user email address
func validateUserEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}

	return nil
}

// validateUserName validates a user display name
func validateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("full name is required")
	}

	if len(name) > 200 {
		return errors.New("full name must be less than 200 characters")
	}

	return nil
}

// validateUserRole validates a user role against the closed set
func validateUserRole(role UserRole) error {
	switch role {
	case RoleAttendee, RoleOrganizer:
		return nil
	default:
		return errors.New("invalid user role")
	}
}

// IsOrganizer returns true if the user can manage events and ticket types
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}
