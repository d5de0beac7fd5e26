package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmove/api/internal/model"
)

// Mock implementations

type mockEventRepo struct {
	events      []*model.Event
	createErr   error
	listErr     error
	createCalls int
	listCalls   int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{}
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	event.ID = "event:" + event.Title
	event.CreatedOn = time.Now().UTC()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventRepo) ListByCreator(ctx context.Context, creatorID string) ([]*model.Event, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*model.Event
	for _, e := range m.events {
		if e.CreatedBy == creatorID {
			result = append(result, e)
		}
	}
	return result, nil
}

func newTestEventService(repo *mockEventRepo) *EventService {
	return NewEventService(EventServiceConfig{EventRepo: repo})
}

func carpoolRequest() model.CreateEventRequest {
	return model.CreateEventRequest{
		Category:     model.EventCategoryCarpooling,
		Title:        "Ride to work",
		StartTime:    "2026-09-14T08:30:00Z",
		MeetingPoint: "Česká",
		Carpool: &model.CarpoolDetails{
			SeatsAvailable: 3,
			CarModel:       "Škoda Octavia",
		},
	}
}

// Tests

func TestSubmitCarpoolEvent(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTestEventService(repo)

	event, err := svc.Submit(context.Background(), "user:u1", carpoolRequest())
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedOn.IsZero(), "store-assigned creation time expected")
	assert.Equal(t, "user:u1", event.CreatedBy)
	assert.Equal(t, []string{"user:u1"}, event.Participants)
	assert.Equal(t, model.EventStatusActive, event.Status)

	// Only the carpool attribute group is populated
	require.NotNil(t, event.Carpool)
	assert.Nil(t, event.Ride)
	assert.Nil(t, event.CarFree)
	assert.Equal(t, 3, event.Carpool.SeatsAvailable)
}

func TestSubmitRequiresAuth(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTestEventService(repo)

	_, err := svc.Submit(context.Background(), "", carpoolRequest())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, 0, repo.createCalls, "store must not be called without auth")
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.CreateEventRequest)
		wantErr error
	}{
		{
			name:    "unknown category",
			mutate:  func(r *model.CreateEventRequest) { r.Category = "scooter-share" },
			wantErr: ErrInvalidEventCategory,
		},
		{
			name:    "missing title",
			mutate:  func(r *model.CreateEventRequest) { r.Title = "   " },
			wantErr: ErrTitleRequired,
		},
		{
			name: "title too long",
			mutate: func(r *model.CreateEventRequest) {
				long := make([]byte, model.MaxEventTitleLength+1)
				for i := range long {
					long[i] = 'a'
				}
				r.Title = string(long)
			},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "missing start time",
			mutate:  func(r *model.CreateEventRequest) { r.StartTime = "" },
			wantErr: ErrStartTimeRequired,
		},
		{
			name:    "malformed start time",
			mutate:  func(r *model.CreateEventRequest) { r.StartTime = "next tuesday" },
			wantErr: ErrInvalidStartTime,
		},
		{
			name:    "missing meeting point",
			mutate:  func(r *model.CreateEventRequest) { r.MeetingPoint = "" },
			wantErr: ErrMeetingPointRequired,
		},
		{
			name:    "missing attribute group",
			mutate:  func(r *model.CreateEventRequest) { r.Carpool = nil },
			wantErr: ErrEventDetailsMismatch,
		},
		{
			name: "attribute group for wrong category",
			mutate: func(r *model.CreateEventRequest) {
				r.Carpool = nil
				r.Ride = &model.RideDetails{Difficulty: "easy", DistanceKm: 10, Pace: "relaxed"}
			},
			wantErr: ErrEventDetailsMismatch,
		},
		{
			name: "two attribute groups",
			mutate: func(r *model.CreateEventRequest) {
				r.Ride = &model.RideDetails{Difficulty: "easy", DistanceKm: 10, Pace: "relaxed"}
			},
			wantErr: ErrEventDetailsMismatch,
		},
		{
			name:    "zero seats",
			mutate:  func(r *model.CreateEventRequest) { r.Carpool.SeatsAvailable = 0 },
			wantErr: ErrInvalidSeats,
		},
		{
			name:    "missing car model",
			mutate:  func(r *model.CreateEventRequest) { r.Carpool.CarModel = "" },
			wantErr: ErrCarModelRequired,
		},
		{
			name: "max participants below two",
			mutate: func(r *model.CreateEventRequest) {
				one := 1
				r.MaxParticipants = &one
			},
			wantErr: ErrInvalidMaxParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockEventRepo()
			svc := newTestEventService(repo)

			req := carpoolRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), "user:u1", req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, repo.createCalls, "invalid request must not reach the store")
		})
	}
}

func TestSubmitRideValidation(t *testing.T) {
	base := model.CreateEventRequest{
		Category:     model.EventCategoryCyclistMatching,
		Title:        "Saturday hills",
		StartTime:    "2026-09-20T09:00:00Z",
		MeetingPoint: "Špilberk",
	}

	tests := []struct {
		name    string
		ride    model.RideDetails
		wantErr error
	}{
		{"unknown difficulty", model.RideDetails{Difficulty: "brutal", DistanceKm: 40, Pace: "sporty"}, ErrInvalidDifficulty},
		{"zero distance", model.RideDetails{Difficulty: "hard", DistanceKm: 0, Pace: "sporty"}, ErrInvalidDistance},
		{"unknown pace", model.RideDetails{Difficulty: "hard", DistanceKm: 40, Pace: "frantic"}, ErrInvalidPace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestEventService(newMockEventRepo())

			req := base
			ride := tt.ride
			req.Ride = &ride

			_, err := svc.Submit(context.Background(), "user:u1", req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitCarFreeValidation(t *testing.T) {
	svc := newTestEventService(newMockEventRepo())

	req := model.CreateEventRequest{
		Category:     model.EventCategoryCarFreeDay,
		Title:        "Leave the car home",
		StartTime:    "2026-09-22T07:00:00Z",
		MeetingPoint: "Náměstí Svobody",
		CarFree:      &model.CarFreeDetails{AlternativeTransport: "teleport"},
	}

	_, err := svc.Submit(context.Background(), "user:u1", req)
	assert.ErrorIs(t, err, ErrInvalidAltTransport)
}

func TestSubmitStoreErrorSurfaced(t *testing.T) {
	repo := newMockEventRepo()
	repo.createErr = errors.New("store unavailable")
	svc := newTestEventService(repo)

	_, err := svc.Submit(context.Background(), "user:u1", carpoolRequest())
	require.Error(t, err)
	assert.Equal(t, repo.createErr, err, "store errors surface verbatim")
	assert.Equal(t, 1, repo.createCalls, "no retry on store failure")
}

func TestSubmitAcceptsLocalStartTime(t *testing.T) {
	svc := newTestEventService(newMockEventRepo())

	req := carpoolRequest()
	req.StartTime = "2026-09-14T08:30"

	event, err := svc.Submit(context.Background(), "user:u1", req)
	require.NoError(t, err)

	want := time.Date(2026, 9, 14, 8, 30, 0, 0, time.Local).UTC()
	assert.Equal(t, want, event.StartTime)
}

func TestListForUserEmptyUserID(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTestEventService(repo)

	summaries, err := svc.ListForUser(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Equal(t, 0, repo.listCalls, "empty user must not touch the store")
}

func TestListForUserFiltersByCreator(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTestEventService(repo)

	_, err := svc.Submit(context.Background(), "user:u1", carpoolRequest())
	require.NoError(t, err)

	other := carpoolRequest()
	other.Title = "Ride home"
	_, err = svc.Submit(context.Background(), "user:u2", other)
	require.NoError(t, err)

	summaries, err := svc.ListForUser(context.Background(), "user:u1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Ride to work", summaries[0].Title)
}

func TestListForUserDisplayFormatting(t *testing.T) {
	repo := newMockEventRepo()
	repo.events = []*model.Event{
		{
			ID:        "event:1",
			Category:  model.EventCategoryCarpooling,
			Title:     "well-formed",
			StartTime: time.Date(2026, 9, 14, 8, 30, 0, 0, time.UTC),
			CreatedOn: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			CreatedBy: "user:u1",
			Carpool:   &model.CarpoolDetails{SeatsAvailable: 2, CarModel: "Fabia"},
			Status:    model.EventStatusActive,
		},
		{
			ID:        "event:2",
			Category:  model.EventCategoryCarpooling,
			Title:     "missing created_on",
			StartTime: time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
			CreatedBy: "user:u1",
			Status:    model.EventStatusActive,
		},
		{
			ID:               "event:3",
			Category:         model.EventCategoryCarpooling,
			Title:            "malformed timestamps",
			StartTimeInvalid: true,
			CreatedOnInvalid: true,
			CreatedBy:        "user:u1",
			Status:           model.EventStatusActive,
		},
	}
	svc := newTestEventService(repo)

	summaries, err := svc.ListForUser(context.Background(), "user:u1")
	require.NoError(t, err)
	require.Len(t, summaries, 3, "records with bad timestamps are kept")

	assert.Equal(t, "14/09/2026 08:30", summaries[0].StartTimeDisplay)
	assert.Equal(t, "01/09/2026 12:00", summaries[0].CreatedOnDisplay)

	assert.Equal(t, "unset", summaries[1].CreatedOnDisplay)

	assert.Equal(t, "invalid date", summaries[2].StartTimeDisplay)
	assert.Equal(t, "invalid date", summaries[2].CreatedOnDisplay)
}

func TestListForUserStoreError(t *testing.T) {
	repo := newMockEventRepo()
	repo.listErr = errors.New("store unavailable")
	svc := newTestEventService(repo)

	_, err := svc.ListForUser(context.Background(), "user:u1")
	assert.Equal(t, repo.listErr, err)
}
