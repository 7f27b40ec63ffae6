package app

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
)

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

func find[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, it := range items {
		if key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// RecordMileage logs a ride. Distances must be positive.
func (s *Service) RecordMileage(km float64, notes string) (model.MileageEntry, error) {
	if km <= 0 {
		return model.MileageEntry{}, fmt.Errorf("app: distance must be positive, got %v", km)
	}
	return s.Store.RecordMileage(km, strings.TrimSpace(notes)), nil
}

// CompleteTask marks a maintenance task done now.
func (s *Service) CompleteTask(id string) (model.MaintenanceTask, error) {
	t, ok := s.Store.CompleteMaintenanceTask(id)
	if !ok {
		return t, notFound("task", id)
	}
	return t, nil
}

// ResetTask clears a task's current cycle.
func (s *Service) ResetTask(id string) (model.MaintenanceTask, error) {
	t, ok := s.Store.ResetMaintenanceTask(id)
	if !ok {
		return t, notFound("task", id)
	}
	return t, nil
}

// SetComponent records an inspection of a component.
func (s *Service) SetComponent(id string, status model.Status, notes *string) (model.ComponentCheck, error) {
	c, ok := find(s.Store.Data().ComponentChecks, id, func(c model.ComponentCheck) string { return c.ID })
	if !ok {
		return c, notFound("component", id)
	}
	if status != "" {
		c.Status = status
	}
	if notes != nil {
		c.Notes = *notes
	}
	c, ok = s.Store.UpdateComponentCheck(c)
	if !ok {
		return c, notFound("component", id)
	}
	return c, nil
}

// Gear looks up a gear item.
func (s *Service) Gear(id string) (model.RidingGear, error) {
	g, ok := find(s.Store.Data().RidingGear, id, func(g model.RidingGear) string { return g.ID })
	if !ok {
		return g, notFound("gear", id)
	}
	return g, nil
}

// AddGear adds a gear item to the wishlist.
func (s *Service) AddGear(g model.RidingGear) (model.RidingGear, error) {
	if strings.TrimSpace(g.Name) == "" {
		return g, fmt.Errorf("app: gear name required")
	}
	return s.Store.AddRidingGear(g), nil
}

// UpdateGear replaces a gear item.
func (s *Service) UpdateGear(g model.RidingGear) error {
	if !s.Store.UpdateRidingGear(g) {
		return notFound("gear", g.ID)
	}
	return nil
}

// DeleteGear removes a gear item.
func (s *Service) DeleteGear(id string) error {
	if !s.Store.DeleteRidingGear(id) {
		return notFound("gear", id)
	}
	return nil
}

// Event looks up a calendar event.
func (s *Service) Event(id string) (model.CalendarEvent, error) {
	e, ok := find(s.Store.Data().CalendarEvents, id, func(e model.CalendarEvent) string { return e.ID })
	if !ok {
		return e, notFound("event", id)
	}
	return e, nil
}

// AddEvent schedules a calendar event.
func (s *Service) AddEvent(e model.CalendarEvent) (model.CalendarEvent, error) {
	if strings.TrimSpace(e.Title) == "" {
		return e, fmt.Errorf("app: event title required")
	}
	if !e.Date.Set() {
		return e, fmt.Errorf("app: event date required")
	}
	return s.Store.AddCalendarEvent(e), nil
}

// UpdateEvent replaces a calendar event.
func (s *Service) UpdateEvent(e model.CalendarEvent) error {
	if !s.Store.UpdateCalendarEvent(e) {
		return notFound("event", e.ID)
	}
	return nil
}

// DeleteEvent removes a calendar event.
func (s *Service) DeleteEvent(id string) error {
	if !s.Store.DeleteCalendarEvent(id) {
		return notFound("event", id)
	}
	return nil
}

// Fuel looks up a fuel entry.
func (s *Service) Fuel(id string) (model.FuelEntry, error) {
	f, ok := find(s.Store.Data().FuelEntries, id, func(f model.FuelEntry) string { return f.ID })
	if !ok {
		return f, notFound("fuel entry", id)
	}
	return f, nil
}

// AddFuel logs a fill-up.
func (s *Service) AddFuel(f model.FuelEntry) (model.FuelEntry, error) {
	if f.Liters <= 0 {
		return f, fmt.Errorf("app: liters must be positive, got %v", f.Liters)
	}
	if f.FuelType == "" {
		f.FuelType = model.FuelPetrol
	}
	return s.Store.AddFuelEntry(f), nil
}

// UpdateFuel replaces a fuel entry.
func (s *Service) UpdateFuel(f model.FuelEntry) (model.FuelEntry, error) {
	f, ok := s.Store.UpdateFuelEntry(f)
	if !ok {
		return f, notFound("fuel entry", f.ID)
	}
	return f, nil
}

// DeleteFuel removes a fuel entry.
func (s *Service) DeleteFuel(id string) error {
	if !s.Store.DeleteFuelEntry(id) {
		return notFound("fuel entry", id)
	}
	return nil
}

// Trip looks up a trip.
func (s *Service) Trip(id string) (model.TripEntry, error) {
	t, ok := find(s.Store.Data().TripEntries, id, func(t model.TripEntry) string { return t.ID })
	if !ok {
		return t, notFound("trip", id)
	}
	return t.Clone(), nil
}

// StartTrip opens a trip at the current odometer reading.
func (s *Service) StartTrip(name string, notes string, locations []string) (model.TripEntry, error) {
	if strings.TrimSpace(name) == "" {
		return model.TripEntry{}, fmt.Errorf("app: trip name required")
	}
	return s.AddTrip(model.TripEntry{
		Name:          name,
		StartOdometer: s.Store.Data().TotalKilometers,
		Notes:         notes,
		Locations:     locations,
	})
}

// AddTrip records a trip, open or already finished.
func (s *Service) AddTrip(t model.TripEntry) (model.TripEntry, error) {
	if t.EndOdometer != nil && *t.EndOdometer < t.StartOdometer {
		return t, fmt.Errorf("app: end odometer %v is below start %v", *t.EndOdometer, t.StartOdometer)
	}
	if t.EndOdometer != nil && !t.EndDate.Set() {
		t.EndDate = model.At(s.Store.Now())
	}
	return s.Store.AddTripEntry(t)
}

// EndTrip closes a trip. A zero endOdometer uses the current total.
func (s *Service) EndTrip(id string, endOdometer float64) (model.TripEntry, error) {
	if endOdometer == 0 {
		endOdometer = s.Store.Data().TotalKilometers
	}
	t, err := s.Trip(id)
	if err != nil {
		return t, err
	}
	if endOdometer < t.StartOdometer {
		return t, fmt.Errorf("app: end odometer %v is below start %v", endOdometer, t.StartOdometer)
	}
	t, ok, err := s.Store.EndTrip(id, endOdometer)
	if err != nil {
		return t, err
	}
	if !ok {
		return t, notFound("trip", id)
	}
	return t, nil
}

// UpdateTrip replaces a trip.
func (s *Service) UpdateTrip(t model.TripEntry) error {
	ok, err := s.Store.UpdateTripEntry(t)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("trip", t.ID)
	}
	return nil
}

// DeleteTrip removes a trip.
func (s *Service) DeleteTrip(id string) error {
	if !s.Store.DeleteTripEntry(id) {
		return notFound("trip", id)
	}
	return nil
}

// Bike returns the bike settings, including the derived starting odometer.
func (s *Service) Bike() state.BikeInfo {
	d := s.Store.Data()
	return state.BikeInfo{
		Model:            d.BikeModel,
		Year:             d.BikeYear,
		PurchaseDate:     d.BikePurchaseDate.Time,
		StartingOdometer: state.StartingOdometer(d),
	}
}

// BikeView is the bike settings as shown to a rider.
type BikeView struct {
	Model            string          `json:"model"`
	Year             int             `json:"year"`
	PurchaseDate     model.Timestamp `json:"purchaseDate"`
	StartingOdometer float64         `json:"startingOdometer"`
	TotalKilometers  float64         `json:"totalKilometers"`
}

// NewBikeView pairs info with the current odometer.
func NewBikeView(info state.BikeInfo, total float64) BikeView {
	return BikeView{
		Model:            info.Model,
		Year:             info.Year,
		PurchaseDate:     model.At(info.PurchaseDate),
		StartingOdometer: info.StartingOdometer,
		TotalKilometers:  total,
	}
}

// SetBike stores the bike settings.
func (s *Service) SetBike(info state.BikeInfo) (state.BikeInfo, error) {
	if strings.TrimSpace(info.Model) == "" {
		return info, fmt.Errorf("app: bike model required")
	}
	if info.StartingOdometer < 0 {
		return info, fmt.Errorf("app: starting odometer must not be negative")
	}
	if info.PurchaseDate.IsZero() {
		info.PurchaseDate = time.Now()
	}
	s.Store.UpdateBikeInfo(info)
	return s.Bike(), nil
}
