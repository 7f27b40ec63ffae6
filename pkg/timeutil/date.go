package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// ParseDate reads a calendar date typed on the command line: "2025-6-28",
// "2025-06-28" or "6/28". A month/day without a year lands on the next
// occurrence relative to now. The result is local midnight.
func ParseDate(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	switch strings.ToLower(s) {
	case "":
		return time.Time{}, fmt.Errorf("empty date")
	case "today":
		return midnight(now), nil
	case "tomorrow":
		return midnight(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return midnight(now).AddDate(0, 0, -1), nil
	}

	if t, err := time.ParseInLocation(layoutISO, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-M-D or M/D", input)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	// 1/3 typed on 12/5 means next January, not eleven months ago.
	if t.Before(midnight(now)) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}

func midnight(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}
