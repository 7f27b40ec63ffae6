// Package mcp provides the Model Context Protocol server integration for
// cyberride.
package mcp

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/timeutil"
)

// Service adapts the app service to tool and resource payloads.
type Service struct {
	App    *app.Service
	Window time.Duration
}

// NewService wraps svc. A zero window falls back to timeutil.DefaultWindow.
func NewService(svc *app.Service, window time.Duration) *Service {
	if window <= 0 {
		window, _, _ = timeutil.ParseWindow(timeutil.DefaultWindow)
	}
	return &Service{App: svc, Window: window}
}

// AchievementSummary is the achievements payload.
type AchievementSummary struct {
	Unlocked     int                 `json:"unlocked"`
	Total        int                 `json:"total"`
	Achievements []model.Achievement `json:"achievements"`
}

// Achievements lists every achievement with its progress.
func (s *Service) Achievements() AchievementSummary {
	all := s.App.Data().Achievements
	sum := AchievementSummary{Total: len(all), Achievements: all}
	for _, a := range all {
		if a.Unlocked {
			sum.Unlocked++
		}
	}
	return sum
}

// Report builds the dashboard. An empty window uses the service default.
func (s *Service) Report(window string) (app.Dashboard, error) {
	d := s.Window
	if strings.TrimSpace(window) != "" {
		var err error
		if d, _, err = timeutil.ParseWindow(window); err != nil {
			return app.Dashboard{}, err
		}
	}
	return s.App.Report(d), nil
}

// Mileage returns the newest entries, all of them when limit is not positive.
func (s *Service) Mileage(limit int) []model.MileageEntry {
	entries := s.App.Data().MileageEntries
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Events lists calendar events dated within [from, to], sorted by date.
// Either bound may be empty.
func (s *Service) Events(from, to string) ([]model.CalendarEvent, error) {
	now := s.App.Store.Now()
	var lo, hi time.Time
	if strings.TrimSpace(from) != "" {
		t, err := app.ParseDate(from, now)
		if err != nil {
			return nil, fmt.Errorf("invalid from value: %w", err)
		}
		lo = t
	}
	if strings.TrimSpace(to) != "" {
		t, err := app.ParseDate(to, now)
		if err != nil {
			return nil, fmt.Errorf("invalid to value: %w", err)
		}
		// inclusive of the whole day
		hi = t.AddDate(0, 0, 1)
	}
	out := make([]model.CalendarEvent, 0)
	for _, e := range s.App.Data().CalendarEvents {
		if !lo.IsZero() && e.Date.Before(lo) {
			continue
		}
		if !hi.IsZero() && !e.Date.Before(hi) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

// Reset restores the defaults once confirmed.
func (s *Service) Reset(confirm bool) error {
	if !confirm {
		return fmt.Errorf("reset erases all data; pass confirm=true")
	}
	return s.App.ResetData()
}
