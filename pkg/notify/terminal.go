package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Terminal writes notifications to a terminal stream.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal returns a Notifier printing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

var (
	titleColor  = color.New(color.FgHiMagenta, color.Bold)
	stickyColor = color.New(color.FgHiYellow, color.Bold)
	bodyColor   = color.New(color.FgCyan)
)

func (t *Terminal) Notify(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	title := titleColor
	if m.Sticky {
		title = stickyColor
	}
	if _, err := title.Fprintln(t.out, m.Title); err != nil {
		return fmt.Errorf("notify: write title: %w", err)
	}
	for _, line := range strings.Split(m.Body, "\n") {
		if line == "" {
			continue
		}
		if _, err := bodyColor.Fprintln(t.out, "  "+line); err != nil {
			return fmt.Errorf("notify: write body: %w", err)
		}
	}
	return nil
}
