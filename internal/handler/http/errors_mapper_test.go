package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("item id=42: %w", store.ErrItemNotFound), http.StatusNotFound},
		{"invalid price", validators.ErrInvalidPrice, http.StatusBadRequest},
		{"invalid password", validators.ErrInvalidPassword, http.StatusBadRequest},
		{"duplicate username", validators.ErrDuplicateUsername, http.StatusConflict},
		{"duplicate email", validators.ErrDuplicateEmail, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestRespondError_KnownErrorCarriesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, fmt.Errorf("item id=42: %w", store.ErrItemNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "item id=42")
}

func TestRespondError_UnknownErrorIsMasked(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, errors.New("secret internal detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret internal detail")
}
