package mapview

import (
	"testing"

	"github.com/urbanmove/api/internal/catalog"
	"github.com/urbanmove/api/internal/model"
)

func TestColorFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode model.TransportMode
		want string
	}{
		{model.ModeBus, "#4CAF50"},
		{model.ModeTram, "#2196F3"},
		{model.ModeBike, "#FF9800"},
		{model.TransportMode("ferry"), "#9E9E9E"},
		{model.TransportMode(""), "#9E9E9E"},
	}

	for _, tt := range tests {
		if got := ColorFor(tt.mode); got != tt.want {
			t.Errorf("ColorFor(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestNewFilterSetAllVisible(t *testing.T) {
	t.Parallel()

	f := NewFilterSet()
	for _, mode := range model.Modes() {
		if !f.Visible(mode) {
			t.Errorf("default filter hides %q", mode)
		}
	}
	if f.Visible(model.TransportMode("ferry")) {
		t.Error("unknown mode should never be visible")
	}
}

func TestToggleFlipsOnlyTargetMode(t *testing.T) {
	t.Parallel()

	f := NewFilterSet().Toggle(model.ModeBus)

	if f.Visible(model.ModeBus) {
		t.Error("bus should be hidden after toggle")
	}
	if !f.Visible(model.ModeTram) || !f.Visible(model.ModeBike) {
		t.Error("toggling bus must not affect tram or bike")
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()

	for _, mode := range model.Modes() {
		orig := NewFilterSet()
		if got := orig.Toggle(mode).Toggle(mode); got != orig {
			t.Errorf("toggling %q twice changed state: %+v", mode, got)
		}
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	orig := NewFilterSet()
	_ = orig.Toggle(model.ModeTram)

	if !orig.Visible(model.ModeTram) {
		t.Error("Toggle mutated its receiver")
	}
}

func TestRenderAppliesFilter(t *testing.T) {
	t.Parallel()

	stops := catalog.All()

	all := Render(stops, NewFilterSet())
	if len(all) != 15 {
		t.Fatalf("expected 15 markers with all modes visible, got %d", len(all))
	}

	noBus := Render(stops, NewFilterSet().Toggle(model.ModeBus))
	if len(noBus) != 10 {
		t.Fatalf("expected 10 markers with bus hidden, got %d", len(noBus))
	}
	for _, m := range noBus {
		if m.Color == ColorBus {
			t.Errorf("marker %q rendered with bus color despite filter", m.StopID)
		}
	}

	none := Render(stops, FilterSet{})
	if len(none) != 0 {
		t.Errorf("expected no markers with everything hidden, got %d", len(none))
	}
}

func TestRenderPopupContent(t *testing.T) {
	t.Parallel()

	stops := []model.StopRecord{
		{
			ID:         "t1",
			Name:       "Náměstí Svobody",
			Coordinate: model.Coordinate{Lat: 49.1957, Lng: 16.6083},
			Mode:       model.ModeTram,
			Lines:      []string{"1", "4", "8"},
		},
		{
			ID:         "bk3",
			Name:       "Zelný trh",
			Coordinate: model.Coordinate{Lat: 49.1922, Lng: 16.6083},
			Mode:       model.ModeBike,
			Capacity:   6,
		},
	}

	markers := Render(stops, NewFilterSet())
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}

	tram := markers[0]
	if tram.Popup.Title != "Náměstí Svobody" || tram.Popup.Mode != "tram" {
		t.Errorf("unexpected tram popup: %+v", tram.Popup)
	}
	if len(tram.Popup.Lines) != 3 || tram.Popup.Capacity != 0 {
		t.Errorf("tram popup should carry lines only: %+v", tram.Popup)
	}

	bike := markers[1]
	if bike.Popup.Capacity != 6 || len(bike.Popup.Lines) != 0 {
		t.Errorf("bike popup should carry capacity only: %+v", bike.Popup)
	}
	if bike.Color != ColorBike {
		t.Errorf("unexpected bike marker color %q", bike.Color)
	}
}
