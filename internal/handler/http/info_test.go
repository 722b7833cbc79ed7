package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-sample-api/internal/service"
	"github.com/MKhiriev/go-sample-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AppInfoService: &appInfoServiceStub{version: "2.3.4"},
	})

	rec := doRequest(t, router, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	requireJSONBody(t, rec)

	var got models.Welcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Welcome to go-sample-api", got.Message)
	assert.Equal(t, "2.3.4", got.Version)
	assert.Equal(t, "/docs", got.Docs)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.False(t, got.Timestamp.IsZero())
}
