// Package get provides the runner that lists tracker records.
package get

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/printers"
)

// Kind names a record collection.
type Kind string

const (
	Mileage      Kind = "mileage"
	Tasks        Kind = "tasks"
	Components   Kind = "components"
	Gear         Kind = "gear"
	Events       Kind = "events"
	Fuel         Kind = "fuel"
	Trips        Kind = "trips"
	Achievements Kind = "achievements"
)

// Kinds lists every collection Get understands, for completion.
func Kinds() []string {
	return []string{string(Mileage), string(Tasks), string(Components), string(Gear), string(Events), string(Fuel), string(Trips), string(Achievements)}
}

// ParseKind accepts a kind or its singular form.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if s == k || s+"s" == k {
			return Kind(k), nil
		}
	}
	return "", fmt.Errorf("unknown collection %q, expected one of %s", s, strings.Join(Kinds(), ", "))
}

type Get struct {
	App    *app.Service
	Kind   Kind
	Limit  int
	ShowID bool
	Output string
	// Owned and Wishlist filter gear; both false shows everything.
	Owned    bool
	Wishlist bool
	// Pending hides completed events.
	Pending bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no app")
	}
	d := n.App.Data()
	now := n.App.Store.Now()
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch n.Kind {
	case Mileage:
		v := limit(d.MileageEntries, n.Limit)
		return pp.Emit(n.Output, v, func(pp *printers.PrettyPrint) { pp.Mileage(v...) })
	case Tasks:
		return pp.Emit(n.Output, d.MaintenanceTasks, func(pp *printers.PrettyPrint) { pp.Tasks(now, d.MaintenanceTasks...) })
	case Components:
		return pp.Emit(n.Output, d.ComponentChecks, func(pp *printers.PrettyPrint) { pp.Components(d.ComponentChecks...) })
	case Gear:
		v := n.gear(d.RidingGear)
		return pp.Emit(n.Output, v, func(pp *printers.PrettyPrint) { pp.Gear(v...) })
	case Events:
		v := n.events(d.CalendarEvents)
		return pp.Emit(n.Output, v, func(pp *printers.PrettyPrint) { pp.Events(v...) })
	case Fuel:
		v := limit(d.FuelEntries, n.Limit)
		return pp.Emit(n.Output, v, func(pp *printers.PrettyPrint) { pp.Fuel(v...) })
	case Trips:
		v := limit(d.TripEntries, n.Limit)
		return pp.Emit(n.Output, v, func(pp *printers.PrettyPrint) { pp.Trips(v...) })
	case Achievements:
		return pp.Emit(n.Output, d.Achievements, func(pp *printers.PrettyPrint) { pp.Achievements(d.Achievements...) })
	default:
		return fmt.Errorf("unknown collection %q", n.Kind)
	}
}

func limit[T any](all []T, n int) []T {
	if n > 0 && len(all) > n {
		return all[:n]
	}
	return all
}

func (n *Get) gear(all []model.RidingGear) []model.RidingGear {
	if n.Owned == n.Wishlist {
		return all
	}
	c := make([]model.RidingGear, 0, len(all))
	for _, g := range all {
		if g.Owned == n.Owned {
			c = append(c, g)
		}
	}
	return c
}

func (n *Get) events(all []model.CalendarEvent) []model.CalendarEvent {
	c := make([]model.CalendarEvent, 0, len(all))
	for _, e := range all {
		if n.Pending && e.Completed {
			continue
		}
		c = append(c, e)
	}
	sort.SliceStable(c, func(i, j int) bool { return c[i].Date.Before(c[j].Date.Time) })
	return limit(c, n.Limit)
}
