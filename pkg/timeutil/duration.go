package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the look-ahead used for upcoming events when none is
	// configured.
	DefaultWindow = "1w"

	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
)

// unit is one window token. Longer spellings come first so FormatWindow can
// use the first entry of each size.
type unit struct {
	size  time.Duration
	names []string
}

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units         = []unit{
		{Month, []string{"mo", "mon", "month", "months"}},
		{Week, []string{"w", "wk", "wks", "week", "weeks"}},
		{Day, []string{"d", "day", "days"}},
		{time.Hour, []string{"h", "hr", "hrs", "hour", "hours"}},
	}
)

func lookup(name string) (time.Duration, bool) {
	for _, u := range units {
		for _, n := range u.names {
			if n == name {
				return u.size, true
			}
		}
	}
	return 0, false
}

// ParseWindow parses a look-ahead such as "1w", "3d", "1mo" or "1w2d" and
// returns the duration with its canonical spelling. An empty input is the
// default window of one week.
func ParseWindow(input string) (time.Duration, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		remaining = DefaultWindow
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		size, ok := lookup(matches[2])
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q, use mo, w, d or h", matches[2])
		}
		total += time.Duration(value) * size
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with mo/w/d/h tokens, dropping anything under an hour.
func FormatWindow(d time.Duration) string {
	var parts []string
	for _, u := range units {
		if d < u.size {
			continue
		}
		count := d / u.size
		d -= count * u.size
		parts = append(parts, fmt.Sprintf("%d%s", count, u.names[0]))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}

// WholeDays is the number of full days in d.
func WholeDays(d time.Duration) int {
	return int(d / Day)
}
