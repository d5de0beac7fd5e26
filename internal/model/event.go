package model

import "time"

// EventCategory identifies the kind of mobility event a user creates.
type EventCategory string

const (
	EventCategoryCarpooling      EventCategory = "carpooling"
	EventCategoryCyclistMatching EventCategory = "cyclist-matching"
	EventCategoryCarFreeDay      EventCategory = "car-free-day"
)

// IsValid reports whether the category is one of the known event kinds.
func (c EventCategory) IsValid() bool {
	switch c {
	case EventCategoryCarpooling, EventCategoryCyclistMatching, EventCategoryCarFreeDay:
		return true
	}
	return false
}

// EventStatus constants. Events are created active; no other transition exists.
const (
	EventStatusActive = "active"
)

// RideDifficulty constants for cyclist-matching events
const (
	RideDifficultyEasy   = "easy"
	RideDifficultyMedium = "medium"
	RideDifficultyHard   = "hard"
)

// RidePace constants for cyclist-matching events
const (
	RidePaceRelaxed  = "relaxed"
	RidePaceModerate = "moderate"
	RidePaceSporty   = "sporty"
)

// AlternativeTransport constants for car-free-day events
const (
	AlternativeTransportWalking = "walking"
	AlternativeTransportCycling = "cycling"
	AlternativeTransportPublic  = "public"
)

// CarpoolDetails holds the attribute group for carpooling events
type CarpoolDetails struct {
	SeatsAvailable int    `json:"seats_available"`
	CarModel       string `json:"car_model"`
}

// RideDetails holds the attribute group for cyclist-matching events
type RideDetails struct {
	Difficulty string  `json:"difficulty"` // easy, medium, hard
	DistanceKm float64 `json:"distance_km"`
	Pace       string  `json:"pace"` // relaxed, moderate, sporty
}

// CarFreeDetails holds the attribute group for car-free-day events
type CarFreeDetails struct {
	AlternativeTransport string `json:"alternative_transport"` // walking, cycling, public
}

// Event represents a user-created mobility event (carpool, group ride,
// car-free-day pledge). The category-specific attributes are modeled as a
// tagged variant: Category selects which of the three detail groups is
// populated, and exactly one must be.
type Event struct {
	ID              string        `json:"id"`
	Category        EventCategory `json:"category"`
	Title           string        `json:"title"`
	Description     *string       `json:"description,omitempty"`
	StartTime       time.Time     `json:"start_time"`
	MeetingPoint    string        `json:"meeting_point"`
	Destination     *string       `json:"destination,omitempty"`
	MaxParticipants *int          `json:"max_participants,omitempty"`

	// Exactly one of the following matches Category.
	Carpool *CarpoolDetails `json:"carpool,omitempty"`
	Ride    *RideDetails    `json:"ride,omitempty"`
	CarFree *CarFreeDetails `json:"car_free,omitempty"`

	CreatedBy    string    `json:"created_by"` // immutable after creation
	CreatedOn    time.Time `json:"created_on"` // assigned by the store
	Participants []string  `json:"participants"`
	Status       string    `json:"status"`

	// Set by the repository when a stored value was present but could not
	// be parsed as a timestamp. Display formatting degrades per field; the
	// record itself is never dropped.
	StartTimeInvalid bool `json:"-"`
	CreatedOnInvalid bool `json:"-"`
}

// DetailsMatchCategory reports whether exactly the attribute group selected
// by Category is populated and the other groups are absent.
func (e *Event) DetailsMatchCategory() bool {
	switch e.Category {
	case EventCategoryCarpooling:
		return e.Carpool != nil && e.Ride == nil && e.CarFree == nil
	case EventCategoryCyclistMatching:
		return e.Ride != nil && e.Carpool == nil && e.CarFree == nil
	case EventCategoryCarFreeDay:
		return e.CarFree != nil && e.Carpool == nil && e.Ride == nil
	}
	return false
}

// EventSummary is the display projection returned by event listings.
// The *Display fields carry pre-formatted values so a record with a missing
// or unparseable timestamp still renders: a missing value formats as
// "unset" and a malformed one as "invalid date".
type EventSummary struct {
	ID               string          `json:"id"`
	Category         EventCategory   `json:"category"`
	Title            string          `json:"title"`
	Description      *string         `json:"description,omitempty"`
	StartTimeDisplay string          `json:"start_time_display"`
	MeetingPoint     string          `json:"meeting_point"`
	Destination      *string         `json:"destination,omitempty"`
	MaxParticipants  *int            `json:"max_participants,omitempty"`
	Carpool          *CarpoolDetails `json:"carpool,omitempty"`
	Ride             *RideDetails    `json:"ride,omitempty"`
	CarFree          *CarFreeDetails `json:"car_free,omitempty"`
	CreatedOnDisplay string          `json:"created_on_display"`
	Participants     []string        `json:"participants"`
	Status           string          `json:"status"`
}

// CreateEventRequest represents a request to create an event. StartTime is
// the user-supplied local date/time; the service normalizes it to an
// absolute timestamp.
type CreateEventRequest struct {
	Category        EventCategory   `json:"category"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	StartTime       string          `json:"start_time"`
	MeetingPoint    string          `json:"meeting_point"`
	Destination     *string         `json:"destination,omitempty"`
	MaxParticipants *int            `json:"max_participants,omitempty"`
	Carpool         *CarpoolDetails `json:"carpool,omitempty"`
	Ride            *RideDetails    `json:"ride,omitempty"`
	CarFree         *CarFreeDetails `json:"car_free,omitempty"`
}

// Constraints
const (
	MaxEventTitleLength       = 100
	MaxEventDescriptionLength = 2000
)
