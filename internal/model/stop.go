package model

// TransportMode identifies the kind of transit a stop serves.
type TransportMode string

const (
	ModeBus  TransportMode = "bus"
	ModeTram TransportMode = "tram"
	ModeBike TransportMode = "bike"
)

// Modes lists every known transport mode.
func Modes() []TransportMode {
	return []TransportMode{ModeBus, ModeTram, ModeBike}
}

// IsValid reports whether the mode is one of the known transport modes.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeBus, ModeTram, ModeBike:
		return true
	}
	return false
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StopRecord is an immutable transit stop entry. Records are defined at
// process start and never mutated. Lines is populated for bus and tram
// stops; Capacity for bike-share docks.
type StopRecord struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Coordinate Coordinate    `json:"coordinate"`
	Mode       TransportMode `json:"mode"`
	Lines      []string      `json:"lines,omitempty"`
	Capacity   int           `json:"capacity,omitempty"`
}
