package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-sample-api/models"
)

// Field name constants for user payload validation.
const (
	// FieldUsername targets the user handle (3 to 50 characters).
	FieldUsername = "username"

	// FieldEmail targets the e-mail address (simple pattern check).
	FieldEmail = "email"

	// FieldPassword targets the creation-time password (at least 8 characters).
	// The password is validated only; it is never stored.
	FieldPassword = "password"
)

// Bounds applied to user payload fields.
const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
)

// emailPattern is deliberately simple: one non-empty local part, an @, a
// non-empty domain, a dot, and a word-character TLD. Full RFC 5322 parsing
// is out of scope for a demo service.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserPayload:
		return v.validateUserPayload(ctx, value, fields...)
	case *models.UserPayload:
		return v.validateUserPayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserPayload(_ context.Context, payload models.UserPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if len(payload.Username) < minUsernameLength || len(payload.Username) > maxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !emailPattern.MatchString(payload.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(payload.Password) < minPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
