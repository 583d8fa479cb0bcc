package auth

import (
	"strings"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Validate validates the register input.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	i.Email = strings.TrimSpace(i.Email)
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") || len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	i.Name = strings.TrimSpace(i.Name)
	if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i *LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	if len(i.RefreshToken) > 512 {
		return domain.NewValidationError("refresh_token", "too long")
	}
	return nil
}
