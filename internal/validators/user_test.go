package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sample-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserPayload() models.UserPayload {
	return models.UserPayload{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		Password: "correct-horse",
	}
}

func TestUserValidator_ValidPayload(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), validUserPayload())
	require.NoError(t, err)
}

func TestUserValidator_FieldBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UserPayload)
		wantErr error
	}{
		{"username too short", func(p *models.UserPayload) { p.Username = "ab" }, ErrInvalidUsername},
		{"username at min length", func(p *models.UserPayload) { p.Username = "abc" }, nil},
		{"username too long", func(p *models.UserPayload) { p.Username = strings.Repeat("x", 51) }, ErrInvalidUsername},
		{"username at max length", func(p *models.UserPayload) { p.Username = strings.Repeat("x", 50) }, nil},
		{"email without at-sign", func(p *models.UserPayload) { p.Email = "alice.example.com" }, ErrInvalidEmail},
		{"email without tld", func(p *models.UserPayload) { p.Email = "alice@example" }, ErrInvalidEmail},
		{"email with subdomain", func(p *models.UserPayload) { p.Email = "alice@mail.example.co.uk" }, nil},
		{"empty email", func(p *models.UserPayload) { p.Email = "" }, ErrInvalidEmail},
		{"password too short", func(p *models.UserPayload) { p.Password = "short" }, ErrInvalidPassword},
		{"password at min length", func(p *models.UserPayload) { p.Password = "12345678" }, nil},
		{"empty full name is allowed", func(p *models.UserPayload) { p.FullName = "" }, nil},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validUserPayload()
			tt.mutate(&payload)

			err := v.Validate(context.Background(), payload)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUserValidator_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	payload := validUserPayload()
	payload.Password = "" // invalid, but password is not in scope

	err := v.Validate(context.Background(), payload, FieldUsername, FieldEmail)
	assert.NoError(t, err)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
