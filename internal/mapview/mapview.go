// Package mapview projects catalog stops into map markers and applies
// per-mode visibility filters. Everything here is pure: filters are value
// types and Toggle returns a modified copy, so callers can hold several
// filter states at once without coordination.
package mapview

import "github.com/urbanmove/api/internal/model"

// Marker colors per transport mode.
const (
	ColorBus     = "#4CAF50"
	ColorTram    = "#2196F3"
	ColorBike    = "#FF9800"
	ColorUnknown = "#9E9E9E"
)

// ColorFor returns the marker color for the given transport mode. Unknown
// modes get a neutral gray so a bad record still renders visibly.
func ColorFor(mode model.TransportMode) string {
	switch mode {
	case model.ModeBus:
		return ColorBus
	case model.ModeTram:
		return ColorTram
	case model.ModeBike:
		return ColorBike
	}
	return ColorUnknown
}

// FilterSet holds per-mode visibility. The zero value hides everything;
// use NewFilterSet for the default all-visible state.
type FilterSet struct {
	Bus  bool `json:"bus"`
	Tram bool `json:"tram"`
	Bike bool `json:"bike"`
}

// NewFilterSet returns a filter set with every mode visible.
func NewFilterSet() FilterSet {
	return FilterSet{Bus: true, Tram: true, Bike: true}
}

// Visible reports whether stops of the given mode pass the filter.
// Unknown modes are never visible.
func (f FilterSet) Visible(mode model.TransportMode) bool {
	switch mode {
	case model.ModeBus:
		return f.Bus
	case model.ModeTram:
		return f.Tram
	case model.ModeBike:
		return f.Bike
	}
	return false
}

// Toggle returns a copy of the filter set with the given mode's visibility
// flipped. The receiver is unchanged; toggling the same mode twice returns
// the original state.
func (f FilterSet) Toggle(mode model.TransportMode) FilterSet {
	switch mode {
	case model.ModeBus:
		f.Bus = !f.Bus
	case model.ModeTram:
		f.Tram = !f.Tram
	case model.ModeBike:
		f.Bike = !f.Bike
	}
	return f
}

// Popup is the detail card attached to a marker. Lines is set for bus and
// tram stops, Capacity for bike-share docks.
type Popup struct {
	Title    string   `json:"title"`
	Mode     string   `json:"mode"`
	Lines    []string `json:"lines,omitempty"`
	Capacity int      `json:"capacity,omitempty"`
}

// Marker is a renderable map pin for a single stop.
type Marker struct {
	StopID     string           `json:"stop_id"`
	Coordinate model.Coordinate `json:"coordinate"`
	Color      string           `json:"color"`
	Popup      Popup            `json:"popup"`
}

// Render projects the stops that pass the filter into markers, preserving
// catalog order.
func Render(stops []model.StopRecord, filters FilterSet) []Marker {
	markers := make([]Marker, 0, len(stops))
	for _, s := range stops {
		if !filters.Visible(s.Mode) {
			continue
		}
		markers = append(markers, Marker{
			StopID:     s.ID,
			Coordinate: s.Coordinate,
			Color:      ColorFor(s.Mode),
			Popup: Popup{
				Title:    s.Name,
				Mode:     string(s.Mode),
				Lines:    s.Lines,
				Capacity: s.Capacity,
			},
		})
	}
	return markers
}
