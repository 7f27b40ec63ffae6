package model

import "fmt"

// Symbol is the glyph printed next to a component status.
func (s Status) Symbol() string {
	switch s {
	case StatusGood:
		return "●"
	case StatusWarning:
		return "▲"
	case StatusCritical:
		return "✖"
	default:
		return "?"
	}
}

// Percent is the achievement completion, capped at 100.
func (a Achievement) Percent() float64 {
	if a.Unlocked {
		return 100
	}
	if a.Target <= 0 {
		return 0
	}
	p := a.Progress / a.Target * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

func (a Achievement) String() string {
	return fmt.Sprintf("%s %s", a.Icon, a.Name)
}

func (e CalendarEvent) String() string {
	if e.Icon != "" {
		return fmt.Sprintf("%s %s", e.Icon, e.Title)
	}
	return e.Title
}
