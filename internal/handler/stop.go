package handler

import (
	"net/http"
	"strings"

	"github.com/urbanmove/api/internal/catalog"
	"github.com/urbanmove/api/internal/mapview"
	"github.com/urbanmove/api/internal/model"
)

// StopHandler serves the static stop catalog and its map-marker projection
type StopHandler struct{}

// NewStopHandler creates a new stop handler
func NewStopHandler() *StopHandler {
	return &StopHandler{}
}

// List handles GET /v1/stops. An optional ?mode= query narrows the catalog
// to a single transport mode.
func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("mode"); raw != "" {
		mode := model.TransportMode(raw)
		if !mode.IsValid() {
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "mode", Message: "unknown transport mode"},
			}))
			return
		}
		WriteCollection(w, http.StatusOK, catalog.ByMode(mode), map[string]string{
			"self":    "/v1/stops?mode=" + raw,
			"markers": "/v1/stops/markers",
		})
		return
	}

	WriteCollection(w, http.StatusOK, catalog.All(), map[string]string{
		"self":    "/v1/stops",
		"markers": "/v1/stops/markers",
	})
}

// Markers handles GET /v1/stops/markers. The optional ?modes= query holds a
// comma-separated list of visible modes; omitting it renders everything.
func (h *StopHandler) Markers(w http.ResponseWriter, r *http.Request) {
	filters := mapview.NewFilterSet()

	if raw := r.URL.Query().Get("modes"); raw != "" {
		// Start from nothing visible and switch on the requested modes
		filters = mapview.FilterSet{}
		for _, part := range strings.Split(raw, ",") {
			mode := model.TransportMode(strings.TrimSpace(part))
			if !mode.IsValid() {
				WriteError(w, model.NewValidationError([]model.FieldError{
					{Field: "modes", Message: "unknown transport mode"},
				}))
				return
			}
			if !filters.Visible(mode) {
				filters = filters.Toggle(mode)
			}
		}
	}

	markers := mapview.Render(catalog.All(), filters)

	WriteCollection(w, http.StatusOK, markers, map[string]string{
		"self":  "/v1/stops/markers",
		"stops": "/v1/stops",
	})
}
