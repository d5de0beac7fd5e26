package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/urbanmove/api/internal/mapview"
	"github.com/urbanmove/api/internal/model"
)

func decodeCollection(t *testing.T, body []byte) []map[string]interface{} {
	t.Helper()
	var resp CollectionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode collection response: %v", err)
	}
	raw, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("expected data to be a list, got %T", resp.Data)
	}
	records := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		record, ok := item.(map[string]interface{})
		if !ok {
			t.Fatalf("expected list items to be objects, got %T", item)
		}
		records = append(records, record)
	}
	return records
}

func TestStopList_ReturnsFullCatalog(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	stops := decodeCollection(t, rr.Body.Bytes())
	if len(stops) != 15 {
		t.Errorf("expected 15 stops, got %d", len(stops))
	}
}

func TestStopList_FiltersByMode(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops?mode=tram", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	stops := decodeCollection(t, rr.Body.Bytes())
	if len(stops) != 5 {
		t.Errorf("expected 5 tram stops, got %d", len(stops))
	}
	for _, stop := range stops {
		if stop["mode"] != "tram" {
			t.Errorf("expected only tram stops, got mode %v", stop["mode"])
		}
	}
}

func TestStopList_UnknownMode_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops?mode=ferry", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}

	problem := parseErrorResponse(t, rr.Body.Bytes())
	if len(problem.Errors) == 0 || problem.Errors[0].Field != "mode" {
		t.Errorf("expected validation error on 'mode', got %+v", problem.Errors)
	}
}

func TestStopMarkers_DefaultShowsEverything(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops/markers", nil)
	rr := httptest.NewRecorder()

	handler.Markers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	markers := decodeCollection(t, rr.Body.Bytes())
	if len(markers) != 15 {
		t.Errorf("expected 15 markers, got %d", len(markers))
	}
}

func TestStopMarkers_ModeAllowlist(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops/markers?modes=bus", nil)
	rr := httptest.NewRecorder()

	handler.Markers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	markers := decodeCollection(t, rr.Body.Bytes())
	if len(markers) != 5 {
		t.Errorf("expected 5 bus markers, got %d", len(markers))
	}
	for _, marker := range markers {
		if marker["color"] != mapview.ColorBus {
			t.Errorf("expected bus color %q, got %v", mapview.ColorBus, marker["color"])
		}
	}
}

func TestStopMarkers_MultipleModes(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops/markers?modes=tram,bike", nil)
	rr := httptest.NewRecorder()

	handler.Markers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	markers := decodeCollection(t, rr.Body.Bytes())
	if len(markers) != 10 {
		t.Errorf("expected 10 markers for tram+bike, got %d", len(markers))
	}
	for _, marker := range markers {
		color := marker["color"]
		if color != mapview.ColorTram && color != mapview.ColorBike {
			t.Errorf("unexpected marker color %v", color)
		}
	}
}

func TestStopMarkers_UnknownMode_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	handler := NewStopHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/stops/markers?modes=bus,zeppelin", nil)
	rr := httptest.NewRecorder()

	handler.Markers(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}

	problem := parseErrorResponse(t, rr.Body.Bytes())
	if len(problem.Errors) == 0 || problem.Errors[0].Field != "modes" {
		t.Errorf("expected validation error on 'modes', got %+v", problem.Errors)
	}
}

func parseErrorResponse(t *testing.T, body []byte) *model.ProblemDetails {
	t.Helper()
	var problem model.ProblemDetails
	if err := json.Unmarshal(body, &problem); err != nil {
		t.Fatalf("failed to parse error response: %v", err)
	}
	return &problem
}
