// Package catalog holds the static transit stop catalog rendered on the map.
//
// The catalog is defined at process start and never mutated. Callers receive
// copies of the backing slice, so no locking is needed anywhere.
package catalog

import "github.com/urbanmove/api/internal/model"

// stops is the fixed city-center stop table: five bus stops, five tram
// stops and five bike-share docks.
var stops = []model.StopRecord{
	// Bus
	{ID: "b1", Name: "Česká", Coordinate: model.Coordinate{Lat: 49.1951, Lng: 16.6068}, Mode: model.ModeBus, Lines: []string{"12", "13"}},
	{ID: "b2", Name: "Hlavní nádraží", Coordinate: model.Coordinate{Lat: 49.1909, Lng: 16.6122}, Mode: model.ModeBus, Lines: []string{"40", "48", "50"}},
	{ID: "b3", Name: "Mendlovo náměstí", Coordinate: model.Coordinate{Lat: 49.1905, Lng: 16.5942}, Mode: model.ModeBus, Lines: []string{"25", "26", "37"}},
	{ID: "b4", Name: "Úvoz", Coordinate: model.Coordinate{Lat: 49.1967, Lng: 16.5977}, Mode: model.ModeBus, Lines: []string{"25", "26", "37"}},
	{ID: "b5", Name: "Konečného náměstí", Coordinate: model.Coordinate{Lat: 49.2047, Lng: 16.5977}, Mode: model.ModeBus, Lines: []string{"12", "13"}},

	// Tram
	{ID: "t1", Name: "Náměstí Svobody", Coordinate: model.Coordinate{Lat: 49.1957, Lng: 16.6083}, Mode: model.ModeTram, Lines: []string{"1", "4", "8"}},
	{ID: "t2", Name: "Hlavní nádraží", Coordinate: model.Coordinate{Lat: 49.1907, Lng: 16.6125}, Mode: model.ModeTram, Lines: []string{"1", "2", "4", "9"}},
	{ID: "t3", Name: "Malinovského náměstí", Coordinate: model.Coordinate{Lat: 49.1967, Lng: 16.6158}, Mode: model.ModeTram, Lines: []string{"1", "2", "4", "9"}},
	{ID: "t4", Name: "Moravské náměstí", Coordinate: model.Coordinate{Lat: 49.1986, Lng: 16.6086}, Mode: model.ModeTram, Lines: []string{"1", "6"}},
	{ID: "t5", Name: "Mendlovo náměstí", Coordinate: model.Coordinate{Lat: 49.1903, Lng: 16.5945}, Mode: model.ModeTram, Lines: []string{"1", "5", "6"}},

	// Bike-share docks
	{ID: "bk1", Name: "Moravské náměstí", Coordinate: model.Coordinate{Lat: 49.1984, Lng: 16.6089}, Mode: model.ModeBike, Capacity: 10},
	{ID: "bk2", Name: "Česká", Coordinate: model.Coordinate{Lat: 49.1953, Lng: 16.6070}, Mode: model.ModeBike, Capacity: 8},
	{ID: "bk3", Name: "Zelný trh", Coordinate: model.Coordinate{Lat: 49.1922, Lng: 16.6083}, Mode: model.ModeBike, Capacity: 6},
	{ID: "bk4", Name: "Hlavní nádraží", Coordinate: model.Coordinate{Lat: 49.1905, Lng: 16.6127}, Mode: model.ModeBike, Capacity: 12},
	{ID: "bk5", Name: "Špilberk", Coordinate: model.Coordinate{Lat: 49.1947, Lng: 16.5994}, Mode: model.ModeBike, Capacity: 8},
}

// All returns every stop in the catalog.
func All() []model.StopRecord {
	out := make([]model.StopRecord, len(stops))
	copy(out, stops)
	return out
}

// ByMode returns the stops served by the given transport mode.
func ByMode(mode model.TransportMode) []model.StopRecord {
	var out []model.StopRecord
	for _, s := range stops {
		if s.Mode == mode {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the stop with the given ID, or false when no such stop exists.
func Get(id string) (model.StopRecord, bool) {
	for _, s := range stops {
		if s.ID == id {
			return s, true
		}
	}
	return model.StopRecord{}, false
}
