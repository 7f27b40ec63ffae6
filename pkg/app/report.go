package app

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
)

const (
	upcomingLimit = 5
	recentLimit   = 3
)

// Dashboard is the at-a-glance summary of the bike.
type Dashboard struct {
	GeneratedAt        time.Time              `json:"generatedAt"`
	Window             time.Duration          `json:"window"`
	BikeModel          string                 `json:"bikeModel"`
	BikeYear           int                    `json:"bikeYear"`
	TotalKilometers    float64                `json:"totalKilometers"`
	Overdue            []state.OverdueTask    `json:"overdue"`
	Critical           []model.ComponentCheck `json:"critical"`
	RecentMileage      []model.MileageEntry   `json:"recentMileage"`
	RecentAchievements []model.Achievement    `json:"recentAchievements"`
	Upcoming           []state.UpcomingEvent  `json:"upcoming"`
	Unlocked           int                    `json:"unlocked"`
	Achievements       int                    `json:"achievements"`
	Fuel               state.FuelSummary      `json:"fuel"`
	OpenTrip           *model.TripEntry       `json:"openTrip,omitempty"`
}

// Report builds the dashboard, looking window ahead for calendar events.
func (s *Service) Report(window time.Duration) Dashboard {
	d := s.Store.Data()
	now := s.Store.Now()
	r := Dashboard{
		GeneratedAt:        now,
		Window:             window,
		BikeModel:          d.BikeModel,
		BikeYear:           d.BikeYear,
		TotalKilometers:    d.TotalKilometers,
		Overdue:            state.OverdueTasks(d, now),
		Critical:           state.CriticalComponents(d),
		RecentMileage:      state.RecentMileage(d, recentLimit),
		RecentAchievements: state.RecentAchievements(d, recentLimit),
		Upcoming:           state.UpcomingEvents(d, now, window, upcomingLimit),
		Achievements:       len(d.Achievements),
		Fuel:               state.FuelStats(d),
	}
	for _, a := range d.Achievements {
		if a.Unlocked {
			r.Unlocked++
		}
	}
	if t, ok := state.OpenTrip(d); ok {
		r.OpenTrip = &t
	}
	return r
}
