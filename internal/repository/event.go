package repository

import (
	"context"

	"github.com/urbanmove/api/internal/database"
	"github.com/urbanmove/api/internal/model"
)

// EventRepository handles mobility event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create appends a new event to the store. The store assigns the record ID
// and creation time; both are written back onto the passed event.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	// Build query dynamically to handle optional fields (SurrealDB option<T> requires NONE, not NULL)
	vars := map[string]interface{}{
		"category":      string(event.Category),
		"title":         event.Title,
		"start_time":    event.StartTime,
		"meeting_point": event.MeetingPoint,
		"created_by":    event.CreatedBy,
		"participants":  event.Participants,
		"status":        event.Status,
	}

	setClause := `
		category = $category,
		title = $title,
		start_time = $start_time,
		meeting_point = $meeting_point,
		created_by = $created_by,
		participants = $participants,
		status = $status,
		created_on = time::now()`

	if event.Description != nil {
		setClause += ", description = $description"
		vars["description"] = *event.Description
	}
	if event.Destination != nil {
		setClause += ", destination = $destination"
		vars["destination"] = *event.Destination
	}
	if event.MaxParticipants != nil {
		setClause += ", max_participants = $max_participants"
		vars["max_participants"] = *event.MaxParticipants
	}

	// Exactly one attribute group matches the category; the service has
	// already validated this.
	switch {
	case event.Carpool != nil:
		setClause += ", carpool = $carpool"
		vars["carpool"] = map[string]interface{}{
			"seats_available": event.Carpool.SeatsAvailable,
			"car_model":       event.Carpool.CarModel,
		}
	case event.Ride != nil:
		setClause += ", ride = $ride"
		vars["ride"] = map[string]interface{}{
			"difficulty":  event.Ride.Difficulty,
			"distance_km": event.Ride.DistanceKm,
			"pace":        event.Ride.Pace,
		}
	case event.CarFree != nil:
		setClause += ", car_free = $car_free"
		vars["car_free"] = map[string]interface{}{
			"alternative_transport": event.CarFree.AlternativeTransport,
		}
	}

	query := "CREATE event SET" + setClause

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedOn = created.CreatedOn
	return nil
}

// ListByCreator returns the events created by the given user, newest first.
// Records with malformed timestamps are kept and flagged, never dropped.
func (r *EventRepository) ListByCreator(ctx context.Context, creatorID string) ([]*model.Event, error) {
	query := `SELECT * FROM event WHERE created_by = $creator ORDER BY created_on DESC`
	vars := map[string]interface{}{"creator": creatorID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Event{}, nil
	}

	events := make([]*model.Event, 0, len(records))
	for _, record := range records {
		data, ok := record.(map[string]interface{})
		if !ok {
			continue
		}
		events = append(events, parseEventData(data))
	}

	return events, nil
}

// parseEventData maps a raw SurrealDB record onto a model.Event. Timestamps
// that are present but unreadable set the matching Invalid flag instead of
// failing the record.
func parseEventData(data map[string]interface{}) *model.Event {
	event := &model.Event{
		ID:              convertSurrealID(data["id"]),
		Category:        model.EventCategory(getString(data, "category")),
		Title:           getString(data, "title"),
		Description:     getStringPtr(data, "description"),
		MeetingPoint:    getString(data, "meeting_point"),
		Destination:     getStringPtr(data, "destination"),
		MaxParticipants: getIntPtr(data, "max_participants"),
		CreatedBy:       convertSurrealID(data["created_by"]),
		Participants:    getStringSlice(data, "participants"),
		Status:          getString(data, "status"),
	}

	event.StartTime, event.StartTimeInvalid = getTimeChecked(data, "start_time")
	event.CreatedOn, event.CreatedOnInvalid = getTimeChecked(data, "created_on")

	if carpool, ok := data["carpool"].(map[string]interface{}); ok {
		event.Carpool = &model.CarpoolDetails{
			SeatsAvailable: getInt(carpool, "seats_available"),
			CarModel:       getString(carpool, "car_model"),
		}
	}
	if ride, ok := data["ride"].(map[string]interface{}); ok {
		event.Ride = &model.RideDetails{
			Difficulty: getString(ride, "difficulty"),
			DistanceKm: getFloat(ride, "distance_km"),
			Pace:       getString(ride, "pace"),
		}
	}
	if carFree, ok := data["car_free"].(map[string]interface{}); ok {
		event.CarFree = &model.CarFreeDetails{
			AlternativeTransport: getString(carFree, "alternative_transport"),
		}
	}

	return event
}
