package handler

import (
	"net/http"

	"github.com/urbanmove/api/internal/database"
)

// HealthHandler reports service liveness and store reachability
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the health endpoint body
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Check handles GET /health. The endpoint stays 200 while the process can
// serve requests; a store outage is reported in the body, not as a failure.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	store := "ok"
	if err := h.db.Ping(r.Context()); err != nil {
		store = "unreachable"
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Store:  store,
	})
}
