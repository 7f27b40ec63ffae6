package app

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
	"tableflip.dev/cyberride/pkg/timeutil"
)

// The patch types below carry a partial record from a command line or an MCP
// call. Nil fields are left alone. Enumerations and dates arrive as text and
// are parsed when the patch is applied.

// ParseDate accepts RFC 3339 timestamps, ISO dates and the short forms
// understood by timeutil.ParseDate.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if t, err := model.ParseTime(strings.TrimSpace(s)); err == nil {
		return t, nil
	}
	return timeutil.ParseDate(s, now)
}

func patchDate(dst *model.Timestamp, src *string, now time.Time) error {
	if src == nil {
		return nil
	}
	if strings.TrimSpace(*src) == "" {
		*dst = model.Timestamp{}
		return nil
	}
	t, err := ParseDate(*src, now)
	if err != nil {
		return err
	}
	*dst = model.At(t)
	return nil
}

func patchEnum[T ~string](dst *T, src *string, parse func(string) (T, error)) error {
	if src == nil {
		return nil
	}
	v, err := parse(*src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

type GearPatch struct {
	Name       *string  `json:"name,omitempty"`
	Category   *string  `json:"category,omitempty"`
	Priority   *string  `json:"priority,omitempty"`
	Owned      *bool    `json:"owned,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	TargetDate *string  `json:"target_date,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

func (p GearPatch) Apply(g *model.RidingGear, now time.Time) error {
	set(&g.Name, p.Name)
	set(&g.Owned, p.Owned)
	set(&g.Price, p.Price)
	set(&g.Notes, p.Notes)
	if err := patchEnum(&g.Category, p.Category, model.ParseGearCategory); err != nil {
		return err
	}
	if err := patchEnum(&g.Priority, p.Priority, model.ParsePriority); err != nil {
		return err
	}
	return patchDate(&g.TargetDate, p.TargetDate, now)
}

type EventPatch struct {
	Title       *string `json:"title,omitempty"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	Recurring   *bool   `json:"recurring,omitempty"`
}

func (p EventPatch) Apply(e *model.CalendarEvent, now time.Time) error {
	set(&e.Title, p.Title)
	set(&e.Description, p.Description)
	set(&e.Icon, p.Icon)
	set(&e.Completed, p.Completed)
	set(&e.Recurring, p.Recurring)
	if err := patchEnum(&e.Type, p.Type, model.ParseEventType); err != nil {
		return err
	}
	return patchDate(&e.Date, p.Date, now)
}

type FuelPatch struct {
	Date          *string  `json:"date,omitempty"`
	Liters        *float64 `json:"liters,omitempty"`
	PricePerLiter *float64 `json:"price_per_liter,omitempty"`
	Odometer      *float64 `json:"odometer,omitempty"`
	FuelType      *string  `json:"fuel_type,omitempty"`
	FullTank      *bool    `json:"full_tank,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

func (p FuelPatch) Apply(f *model.FuelEntry, now time.Time) error {
	set(&f.Liters, p.Liters)
	set(&f.PricePerLiter, p.PricePerLiter)
	set(&f.Odometer, p.Odometer)
	set(&f.FullTank, p.FullTank)
	set(&f.Notes, p.Notes)
	if err := patchEnum(&f.FuelType, p.FuelType, model.ParseFuelType); err != nil {
		return err
	}
	return patchDate(&f.Date, p.Date, now)
}

type TripPatch struct {
	Name          *string   `json:"name,omitempty"`
	StartDate     *string   `json:"start_date,omitempty"`
	EndDate       *string   `json:"end_date,omitempty"`
	StartOdometer *float64  `json:"start_odometer,omitempty"`
	EndOdometer   *float64  `json:"end_odometer,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Locations     *[]string `json:"locations,omitempty"`
	Photos        *[]string `json:"photos,omitempty"`
}

func (p TripPatch) Apply(t *model.TripEntry, now time.Time) error {
	set(&t.Name, p.Name)
	set(&t.StartOdometer, p.StartOdometer)
	set(&t.Notes, p.Notes)
	set(&t.Locations, p.Locations)
	set(&t.Photos, p.Photos)
	if p.EndOdometer != nil {
		t.EndOdometer = model.Float(*p.EndOdometer)
	}
	if t.EndOdometer != nil && (p.EndOdometer != nil || p.StartOdometer != nil) {
		t.Distance = *t.EndOdometer - t.StartOdometer
	}
	if err := patchDate(&t.StartDate, p.StartDate, now); err != nil {
		return err
	}
	return patchDate(&t.EndDate, p.EndDate, now)
}

type BikePatch struct {
	Model            *string  `json:"model,omitempty"`
	Year             *int     `json:"year,omitempty"`
	PurchaseDate     *string  `json:"purchase_date,omitempty"`
	StartingOdometer *float64 `json:"starting_odometer,omitempty"`
}

func (p BikePatch) Apply(b *state.BikeInfo, now time.Time) error {
	set(&b.Model, p.Model)
	set(&b.Year, p.Year)
	set(&b.StartingOdometer, p.StartingOdometer)
	if p.PurchaseDate != nil {
		t, err := ParseDate(*p.PurchaseDate, now)
		if err != nil {
			return err
		}
		b.PurchaseDate = t
	}
	return nil
}

// NewGear adds a gear item built from p.
func (s *Service) NewGear(p GearPatch) (model.RidingGear, error) {
	g := model.RidingGear{Category: model.GearAccessories, Priority: model.PriorityMedium}
	if err := p.Apply(&g, s.Store.Now()); err != nil {
		return g, err
	}
	return s.AddGear(g)
}

// PatchGear edits a gear item.
func (s *Service) PatchGear(id string, p GearPatch) (model.RidingGear, error) {
	g, err := s.Gear(id)
	if err != nil {
		return g, err
	}
	if err := p.Apply(&g, s.Store.Now()); err != nil {
		return g, err
	}
	return g, s.UpdateGear(g)
}

// NewEvent schedules an event built from p.
func (s *Service) NewEvent(p EventPatch) (model.CalendarEvent, error) {
	e := model.CalendarEvent{Type: model.EventCustom}
	if err := p.Apply(&e, s.Store.Now()); err != nil {
		return e, err
	}
	return s.AddEvent(e)
}

// PatchEvent edits an event.
func (s *Service) PatchEvent(id string, p EventPatch) (model.CalendarEvent, error) {
	e, err := s.Event(id)
	if err != nil {
		return e, err
	}
	if err := p.Apply(&e, s.Store.Now()); err != nil {
		return e, err
	}
	return e, s.UpdateEvent(e)
}

// NewFuel logs a fill-up built from p.
func (s *Service) NewFuel(p FuelPatch) (model.FuelEntry, error) {
	f := model.FuelEntry{FuelType: model.FuelPetrol, FullTank: true}
	if err := p.Apply(&f, s.Store.Now()); err != nil {
		return f, err
	}
	return s.AddFuel(f)
}

// PatchFuel edits a fill-up.
func (s *Service) PatchFuel(id string, p FuelPatch) (model.FuelEntry, error) {
	f, err := s.Fuel(id)
	if err != nil {
		return f, err
	}
	if err := p.Apply(&f, s.Store.Now()); err != nil {
		return f, err
	}
	return s.UpdateFuel(f)
}

// NewTrip records a trip built from p.
func (s *Service) NewTrip(p TripPatch) (model.TripEntry, error) {
	t := model.TripEntry{StartOdometer: s.Store.Data().TotalKilometers}
	if err := p.Apply(&t, s.Store.Now()); err != nil {
		return t, err
	}
	if strings.TrimSpace(t.Name) == "" {
		return t, fmt.Errorf("app: trip name required")
	}
	return s.AddTrip(t)
}

// PatchTrip edits a trip.
func (s *Service) PatchTrip(id string, p TripPatch) (model.TripEntry, error) {
	t, err := s.Trip(id)
	if err != nil {
		return t, err
	}
	if err := p.Apply(&t, s.Store.Now()); err != nil {
		return t, err
	}
	if t.EndOdometer != nil && !t.EndDate.Set() {
		t.EndDate = model.At(s.Store.Now())
	}
	return t, s.UpdateTrip(t)
}

// PatchBike edits the bike settings.
func (s *Service) PatchBike(p BikePatch) (state.BikeInfo, error) {
	info := s.Bike()
	if err := p.Apply(&info, s.Store.Now()); err != nil {
		return info, err
	}
	return s.SetBike(info)
}
