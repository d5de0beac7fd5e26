package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/urbanmove/api/internal/database"
)

// stubDB implements database.Database with a controllable ping result.
type stubDB struct {
	pingErr error
}

func (s *stubDB) Connect(ctx context.Context) error { return nil }
func (s *stubDB) Close() error                      { return nil }
func (s *stubDB) Ping(ctx context.Context) error    { return s.pingErr }

func (s *stubDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	return nil, nil
}

func (s *stubDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	return nil, database.ErrNotFound
}

func (s *stubDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	return nil
}

func (s *stubDB) BeginTx(ctx context.Context) (database.Transaction, error) {
	return nil, database.ErrConnection
}

func TestHealthCheck_StoreReachable(t *testing.T) {
	t.Parallel()

	handler := NewHealthHandler(&stubDB{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.Check(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if resp.Store != "ok" {
		t.Errorf("expected store ok, got %q", resp.Store)
	}
}

func TestHealthCheck_StoreDown_StillReturnsOK(t *testing.T) {
	t.Parallel()

	handler := NewHealthHandler(&stubDB{pingErr: database.ErrConnection})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.Check(rr, req)

	// A store outage is reported in the body, not as an HTTP failure
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Store != "unreachable" {
		t.Errorf("expected store unreachable, got %q", resp.Store)
	}
}
