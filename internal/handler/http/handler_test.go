package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sample-api/internal/config"
	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/service"
	"github.com/MKhiriev/go-sample-api/models"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the service layer. A nil field means the test does
// not expect that method to be reached; calling it fails loudly.

type itemServiceStub struct {
	createItem func(ctx context.Context, payload models.ItemPayload) (models.Item, error)
	getItem    func(ctx context.Context, id int64) (models.Item, error)
	listItems  func(ctx context.Context, skip, limit int) ([]models.Item, error)
	updateItem func(ctx context.Context, id int64, payload models.ItemPayload) (models.Item, error)
	deleteItem func(ctx context.Context, id int64) error
}

func (s *itemServiceStub) CreateItem(ctx context.Context, payload models.ItemPayload) (models.Item, error) {
	if s.createItem == nil {
		panic("unexpected call to CreateItem")
	}
	return s.createItem(ctx, payload)
}

func (s *itemServiceStub) GetItem(ctx context.Context, id int64) (models.Item, error) {
	if s.getItem == nil {
		panic("unexpected call to GetItem")
	}
	return s.getItem(ctx, id)
}

func (s *itemServiceStub) ListItems(ctx context.Context, skip, limit int) ([]models.Item, error) {
	if s.listItems == nil {
		panic("unexpected call to ListItems")
	}
	return s.listItems(ctx, skip, limit)
}

func (s *itemServiceStub) UpdateItem(ctx context.Context, id int64, payload models.ItemPayload) (models.Item, error) {
	if s.updateItem == nil {
		panic("unexpected call to UpdateItem")
	}
	return s.updateItem(ctx, id, payload)
}

func (s *itemServiceStub) DeleteItem(ctx context.Context, id int64) error {
	if s.deleteItem == nil {
		panic("unexpected call to DeleteItem")
	}
	return s.deleteItem(ctx, id)
}

type userServiceStub struct {
	createUser        func(ctx context.Context, payload models.UserPayload) (models.User, error)
	getUser           func(ctx context.Context, id int64) (models.User, error)
	getUserByUsername func(ctx context.Context, username string) (models.User, error)
	listUsers         func(ctx context.Context, skip, limit int) ([]models.User, error)
}

func (s *userServiceStub) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	if s.createUser == nil {
		panic("unexpected call to CreateUser")
	}
	return s.createUser(ctx, payload)
}

func (s *userServiceStub) GetUser(ctx context.Context, id int64) (models.User, error) {
	if s.getUser == nil {
		panic("unexpected call to GetUser")
	}
	return s.getUser(ctx, id)
}

func (s *userServiceStub) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if s.getUserByUsername == nil {
		panic("unexpected call to GetUserByUsername")
	}
	return s.getUserByUsername(ctx, username)
}

func (s *userServiceStub) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	if s.listUsers == nil {
		panic("unexpected call to ListUsers")
	}
	return s.listUsers(ctx, skip, limit)
}

type auditServiceStub struct {
	recordAudit    func(ctx context.Context, payload models.AuditPayload) (models.AuditLog, error)
	listAuditLogs  func(ctx context.Context) ([]models.AuditLog, error)
	clearAuditLogs func(ctx context.Context) error
}

func (s *auditServiceStub) RecordAudit(ctx context.Context, payload models.AuditPayload) (models.AuditLog, error) {
	if s.recordAudit == nil {
		panic("unexpected call to RecordAudit")
	}
	return s.recordAudit(ctx, payload)
}

func (s *auditServiceStub) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	if s.listAuditLogs == nil {
		panic("unexpected call to ListAuditLogs")
	}
	return s.listAuditLogs(ctx)
}

func (s *auditServiceStub) ClearAuditLogs(ctx context.Context) error {
	if s.clearAuditLogs == nil {
		panic("unexpected call to ClearAuditLogs")
	}
	return s.clearAuditLogs(ctx)
}

type statsServiceStub struct {
	compute func(ctx context.Context) (models.Stats, error)
}

func (s *statsServiceStub) Compute(ctx context.Context) (models.Stats, error) {
	if s.compute == nil {
		panic("unexpected call to Compute")
	}
	return s.compute(ctx)
}

type appInfoServiceStub struct {
	version string
}

func (s *appInfoServiceStub) GetAppVersion(ctx context.Context) string {
	return s.version
}

// newTestRouter wires the stubbed services into a fully routed handler, so
// tests exercise the real chi routes and middleware chain.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	if services.AppInfoService == nil {
		services.AppInfoService = &appInfoServiceStub{version: "1.0.0"}
	}

	handler := NewHandler(services, config.API{DefaultListLimit: 10}, logger.Nop())
	return handler.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireJSONBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
