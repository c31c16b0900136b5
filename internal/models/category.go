package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Category represents an event category. Categories form a closed set
// enforced at the data-model boundary: events reference a category row, and
// slugs are validated rather than accepted as free-form strings.
type Category struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

var (
	// Slug validation regex: lowercase letters, numbers, and hyphens only
	slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Validate validates the category data
func (c *Category) Validate() error {
	if err := validateCategoryName(c.Name); err != nil {
		return err
	}

	if err := validateCategorySlug(c.Slug); err != nil {
		return err
	}

	return validateCategoryDescription(c.Description)
}

// validateCategoryName validates a category name
func validateCategoryName(name string) error {
	if name == "" {
		return errors.New("category name is required")
	}

	if len(name) > 100 {
		return errors.New("category name must be less than 100 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("category name cannot be only whitespace")
	}

	return nil
}

// validateCategorySlug validates a category slug
func validateCategorySlug(slug string) error {
	if slug == "" {
		return errors.New("category slug is required")
	}

	if len(slug) > 100 {
		return errors.New("category slug must be less than 100 characters")
	}

	if !slugRegex.MatchString(slug) {
		return errors.New("category slug can only contain lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return errors.New("category slug cannot start or end with a hyphen")
	}

	if strings.Contains(slug, "--") {
		return errors.New("category slug cannot contain consecutive hyphens")
	}

	return nil
}

// validateCategoryDescription validates a category description
func validateCategoryDescription(description string) error {
	// Description is optional, but if provided, it should not be too long
	if len(description) > 500 {
		return errors.New("category description must be less than 500 characters")
	}

	return nil
}

// GenerateSlug generates a URL-friendly slug from the category name
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)

	reg := regexp.MustCompile(`[^a-z0-9]+`)
	slug = reg.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")

	reg = regexp.MustCompile(`-+`)
	slug = reg.ReplaceAllString(slug, "-")

	return slug
}
