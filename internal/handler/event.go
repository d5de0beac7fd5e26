package handler

import (
	"net/http"

	"github.com/urbanmove/api/internal/middleware"
	"github.com/urbanmove/api/internal/model"
	"github.com/urbanmove/api/internal/service"
)

// EventHandler handles mobility event endpoints
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	// The service re-checks the session before touching the store
	userID := middleware.GetUserID(r.Context())

	event, err := h.eventService.Submit(r.Context(), userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, event, map[string]string{
		"self": "/v1/events",
	})
}

// List handles GET /v1/events.
//
// The listing is scoped to the token that authenticated this request. A
// client that switches sessions must discard responses issued under the old
// token; the server holds no list state across requests.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summaries, err := h.eventService.ListForUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, summaries, map[string]string{
		"self": "/v1/events",
	})
}
