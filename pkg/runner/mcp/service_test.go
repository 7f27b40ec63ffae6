package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/store"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

func newTestService(t *testing.T) *Service {
	t.Helper()
	slot, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("store.Load failed: %v", err)
	}
	n := 0
	a, err := app.Open(slot, app.Options{
		Clock: func() time.Time { return testNow },
		IDs: func(prefix string) string {
			n++
			return fmt.Sprintf("%s-%d", prefix, n)
		},
	})
	if err != nil {
		t.Fatalf("app.Open failed: %v", err)
	}
	t.Cleanup(a.Close)
	return NewService(a, 0)
}

func call(t *testing.T, svc *Service, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	for _, tl := range tools(svc) {
		if tl.def.Name != name {
			continue
		}
		var req mcp.CallToolRequest
		req.Params.Name = name
		req.Params.Arguments = args
		res, err := wrap(tl.handle)(context.Background(), req)
		if err != nil {
			t.Fatalf("%s returned error: %v", name, err)
		}
		return res
	}
	t.Fatalf("no tool named %s", name)
	return nil
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func decode[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text(t, res))
	}
	var v T
	if err := json.Unmarshal([]byte(text(t, res)), &v); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return v
}

func TestToolNamesUnique(t *testing.T) {
	svc := newTestService(t)
	seen := map[string]bool{}
	for _, tl := range tools(svc) {
		if seen[tl.def.Name] {
			t.Fatalf("duplicate tool %s", tl.def.Name)
		}
		seen[tl.def.Name] = true
	}
	for _, want := range []string{"record_mileage", "complete_task", "add_gear", "add_event", "add_fuel", "start_trip", "end_trip", "get_report", "reset_data"} {
		if !seen[want] {
			t.Fatalf("expected tool %s", want)
		}
	}
}

func TestRecordMileageTool(t *testing.T) {
	svc := newTestService(t)

	got := decode[model.MileageEntry](t, call(t, svc, "record_mileage", map[string]any{"kilometers": 42.5, "notes": "coast"}))
	if got.TotalKilometers != 42.5 {
		t.Fatalf("expected total 42.5, got %v", got.TotalKilometers)
	}

	list := decode[struct {
		TotalKilometers float64 `json:"totalKilometers"`
		Count           int     `json:"count"`
	}](t, call(t, svc, "list_mileage", nil))
	if list.Count != 1 || list.TotalKilometers != 42.5 {
		t.Fatalf("expected one entry totalling 42.5, got %+v", list)
	}
}

func TestRecordMileageRejectsZero(t *testing.T) {
	svc := newTestService(t)
	res := call(t, svc, "record_mileage", map[string]any{"kilometers": 0})
	if !res.IsError {
		t.Fatalf("expected error result, got %s", text(t, res))
	}
}

func TestCompleteTaskTool(t *testing.T) {
	svc := newTestService(t)

	got := decode[model.MaintenanceTask](t, call(t, svc, "complete_task", map[string]any{"id": "wash-1"}))
	if !got.Completed || got.Streak != 1 {
		t.Fatalf("expected completed task with streak 1, got %+v", got)
	}

	res := call(t, svc, "complete_task", map[string]any{"id": "nope"})
	if !res.IsError {
		t.Fatalf("expected error for unknown task")
	}
}

func TestGearToolsRoundTrip(t *testing.T) {
	svc := newTestService(t)

	added := decode[model.RidingGear](t, call(t, svc, "add_gear", map[string]any{
		"name":     "Touring Helmet",
		"category": "helmet",
		"priority": "high",
		"price":    320.0,
	}))
	if added.ID == "" || added.Category != model.GearHelmet {
		t.Fatalf("expected stored helmet, got %+v", added)
	}

	updated := decode[model.RidingGear](t, call(t, svc, "update_gear", map[string]any{"id": added.ID, "owned": true}))
	if !updated.Owned || updated.Name != "Touring Helmet" {
		t.Fatalf("expected owned helmet with name kept, got %+v", updated)
	}

	bad := call(t, svc, "update_gear", map[string]any{"id": added.ID, "category": "cape"})
	if !bad.IsError {
		t.Fatalf("expected error for unknown category")
	}

	call(t, svc, "delete_gear", map[string]any{"id": added.ID})
	if n := len(svc.App.Data().RidingGear); n != 0 {
		t.Fatalf("expected no gear after delete, got %d", n)
	}
}

func TestFuelToolComputesCost(t *testing.T) {
	svc := newTestService(t)

	got := decode[model.FuelEntry](t, call(t, svc, "add_fuel", map[string]any{
		"liters":          10.0,
		"price_per_liter": 1.5,
		"odometer":        1000.0,
		"full_tank":       true,
	}))
	if got.TotalCost != 15 {
		t.Fatalf("expected total cost 15, got %v", got.TotalCost)
	}
}

func TestTripTools(t *testing.T) {
	svc := newTestService(t)

	call(t, svc, "record_mileage", map[string]any{"kilometers": 100.0})
	trip := decode[model.TripEntry](t, call(t, svc, "start_trip", map[string]any{"name": "Alps", "locations": []any{"Bern", "Chur"}}))
	if trip.StartOdometer != 100 || len(trip.Locations) != 2 {
		t.Fatalf("expected trip from 100 km with two stops, got %+v", trip)
	}

	second := call(t, svc, "start_trip", map[string]any{"name": "Again"})
	if !second.IsError {
		t.Fatalf("expected error starting a second open trip")
	}

	call(t, svc, "record_mileage", map[string]any{"kilometers": 250.0})
	ended := decode[model.TripEntry](t, call(t, svc, "end_trip", map[string]any{"id": trip.ID}))
	if ended.Distance != 250 {
		t.Fatalf("expected distance 250, got %v", ended.Distance)
	}
}

func TestUpdateBikeTool(t *testing.T) {
	svc := newTestService(t)
	call(t, svc, "record_mileage", map[string]any{"kilometers": 250.0})

	got := decode[map[string]any](t, call(t, svc, "update_bike", map[string]any{
		"model":             "Duke 390",
		"starting_odometer": 5000.0,
	}))
	if got["model"] != "Duke 390" {
		t.Fatalf("expected model Duke 390, got %v", got["model"])
	}
	if got["totalKilometers"] != 5250.0 {
		t.Fatalf("expected total 5250, got %v", got["totalKilometers"])
	}
}

func TestEventsFilter(t *testing.T) {
	svc := newTestService(t)

	all, err := svc.Events("", "")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	window, err := svc.Events("2025-06-10", "2025-06-11")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(window) >= len(all) {
		t.Fatalf("expected range to narrow %d events, got %d", len(all), len(window))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.Before(all[i-1].Date.Time) {
			t.Fatalf("expected events sorted by date")
		}
	}

	if _, err := svc.Events("not a date", ""); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestResetRequiresConfirm(t *testing.T) {
	svc := newTestService(t)
	call(t, svc, "record_mileage", map[string]any{"kilometers": 10.0})

	if res := call(t, svc, "reset_data", map[string]any{"confirm": false}); !res.IsError {
		t.Fatalf("expected error without confirm")
	}
	call(t, svc, "reset_data", map[string]any{"confirm": true})
	if km := svc.App.Data().TotalKilometers; km != 0 {
		t.Fatalf("expected reset total 0, got %v", km)
	}
}

func TestReportResource(t *testing.T) {
	svc := newTestService(t)
	call(t, svc, "record_mileage", map[string]any{"kilometers": 10.0})

	for _, r := range resources(svc) {
		if r.def.URI != reportURI {
			continue
		}
		var req mcp.ReadResourceRequest
		req.Params.URI = reportURI
		contents, err := r.read(context.Background(), req)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		tc := contents[0].(mcp.TextResourceContents)
		var d app.Dashboard
		if err := json.Unmarshal([]byte(tc.Text), &d); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if d.TotalKilometers != 10 || len(d.RecentMileage) != 1 {
			t.Fatalf("expected one recent ride totalling 10, got %+v", d)
		}
		return
	}
	t.Fatalf("report resource not registered")
}
