package service

import (
	"context"
	"strings"
	"time"

	"github.com/urbanmove/api/internal/model"
)

// displayTimeLayout is the dd/mm/yyyy hh:mm format used by event listings.
const displayTimeLayout = "02/01/2006 15:04"

// startTimeLocalLayout accepts the datetime-local form value clients submit
// when no timezone is attached.
const startTimeLocalLayout = "2006-01-02T15:04"

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	ListByCreator(ctx context.Context, creatorID string) ([]*model.Event, error)
}

// EventService handles mobility event operations
type EventService struct {
	eventRepo EventRepository
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	EventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		eventRepo: cfg.EventRepo,
	}
}

// Submit validates and appends a new event to the store. The creator must
// be authenticated before any store call is made. On success the returned
// event carries the store-assigned ID and creation time, seeded participants
// and active status, so callers can render it without a follow-up read.
func (s *EventService) Submit(ctx context.Context, creatorID string, req model.CreateEventRequest) (*model.Event, error) {
	if creatorID == "" {
		return nil, ErrAuthRequired
	}

	event, err := buildEvent(creatorID, req)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// ListForUser returns the caller's events as display summaries, newest
// first. An empty userID yields an empty list without touching the store.
// Per-record timestamp problems degrade that record's display fields only;
// the call never fails because of them and no record is dropped.
func (s *EventService) ListForUser(ctx context.Context, userID string) ([]*model.EventSummary, error) {
	if userID == "" {
		return []*model.EventSummary{}, nil
	}

	events, err := s.eventRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, summarize(event))
	}

	return summaries, nil
}

// buildEvent validates the request and assembles the event payload: common
// fields plus exactly the attribute group for the declared category.
func buildEvent(creatorID string, req model.CreateEventRequest) (*model.Event, error) {
	if !req.Category.IsValid() {
		return nil, ErrInvalidEventCategory
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > model.MaxEventTitleLength {
		return nil, ErrTitleTooLong
	}

	if req.Description != nil && len(*req.Description) > model.MaxEventDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return nil, ErrStartTimeRequired
	}
	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	meetingPoint := strings.TrimSpace(req.MeetingPoint)
	if meetingPoint == "" {
		return nil, ErrMeetingPointRequired
	}

	if req.MaxParticipants != nil && *req.MaxParticipants < 2 {
		return nil, ErrInvalidMaxParticipants
	}

	event := &model.Event{
		Category:        req.Category,
		Title:           title,
		Description:     req.Description,
		StartTime:       startTime,
		MeetingPoint:    meetingPoint,
		Destination:     req.Destination,
		MaxParticipants: req.MaxParticipants,
		Carpool:         req.Carpool,
		Ride:            req.Ride,
		CarFree:         req.CarFree,
		CreatedBy:       creatorID,
		Participants:    []string{creatorID},
		Status:          model.EventStatusActive,
	}

	if !event.DetailsMatchCategory() {
		return nil, ErrEventDetailsMismatch
	}

	if err := validateDetails(event); err != nil {
		return nil, err
	}

	return event, nil
}

func validateDetails(event *model.Event) error {
	switch event.Category {
	case model.EventCategoryCarpooling:
		if event.Carpool.SeatsAvailable < 1 {
			return ErrInvalidSeats
		}
		if strings.TrimSpace(event.Carpool.CarModel) == "" {
			return ErrCarModelRequired
		}
	case model.EventCategoryCyclistMatching:
		switch event.Ride.Difficulty {
		case model.RideDifficultyEasy, model.RideDifficultyMedium, model.RideDifficultyHard:
		default:
			return ErrInvalidDifficulty
		}
		if event.Ride.DistanceKm <= 0 {
			return ErrInvalidDistance
		}
		switch event.Ride.Pace {
		case model.RidePaceRelaxed, model.RidePaceModerate, model.RidePaceSporty:
		default:
			return ErrInvalidPace
		}
	case model.EventCategoryCarFreeDay:
		switch event.CarFree.AlternativeTransport {
		case model.AlternativeTransportWalking, model.AlternativeTransportCycling, model.AlternativeTransportPublic:
		default:
			return ErrInvalidAltTransport
		}
	}
	return nil
}

// parseStartTime normalizes the user-supplied start time. Full RFC 3339
// timestamps are taken as-is; the timezone-less datetime-local form is read
// in server-local time and converted to UTC.
func parseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation(startTimeLocalLayout, value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func summarize(event *model.Event) *model.EventSummary {
	return &model.EventSummary{
		ID:               event.ID,
		Category:         event.Category,
		Title:            event.Title,
		Description:      event.Description,
		StartTimeDisplay: formatDisplayTime(event.StartTime, event.StartTimeInvalid),
		MeetingPoint:     event.MeetingPoint,
		Destination:      event.Destination,
		MaxParticipants:  event.MaxParticipants,
		Carpool:          event.Carpool,
		Ride:             event.Ride,
		CarFree:          event.CarFree,
		CreatedOnDisplay: formatDisplayTime(event.CreatedOn, event.CreatedOnInvalid),
		Participants:     event.Participants,
		Status:           event.Status,
	}
}

// formatDisplayTime renders a timestamp for listings. A value that was
// present but unreadable renders as "invalid date"; a missing value renders
// as "unset".
func formatDisplayTime(t time.Time, invalid bool) string {
	if invalid {
		return "invalid date"
	}
	if t.IsZero() {
		return "unset"
	}
	return t.Format(displayTimeLayout)
}
