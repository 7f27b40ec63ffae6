package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRoundTrip(t *testing.T) {
	base := t.TempDir()
	s, err := Load(StaticConfig(base))
	require.NoError(t, err)

	blob, err := s.Read()
	require.NoError(t, err)
	assert.Nil(t, blob, "fresh slot should be empty")
	require.NoError(t, s.Erase(), "erasing an empty slot")

	require.NoError(t, s.Write([]byte(`{"totalKilometers":12}`)))
	blob, err = s.Read()
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalKilometers":12}`, string(blob))

	assert.Equal(t, filepath.Join(base, "cyberride", "data"), s.Path())
	onDisk, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, blob, onDisk)

	require.NoError(t, s.Erase())
	blob, err = s.Read()
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestLoadRequiresPath(t *testing.T) {
	_, err := Load(StaticConfig(""))
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CYBERRIDE_CONFIG_PATH", t.TempDir())
	t.Setenv("CYBERRIDE_PATH", "/var/lib/cyberride")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/cyberride", cfg.BasePath())
	assert.True(t, cfg.Notifications())
	assert.Equal(t, DefaultLowEfficiency, cfg.LowEfficiency())
	assert.Equal(t, DefaultUpcomingWindow, cfg.UpcomingWindow())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("path: ~/rides\nnotifications: false\nlow_efficiency: 20\nupcoming_window: 3d\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cyberride.yaml"), data, 0o644))
	t.Setenv("CYBERRIDE_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "rides"), cfg.BasePath())
	assert.False(t, cfg.Notifications())
	assert.Equal(t, 20.0, cfg.LowEfficiency())
	assert.Equal(t, "3d", cfg.UpcomingWindow())
}

func TestSlotWatchEmitsChanges(t *testing.T) {
	base := t.TempDir()
	s, err := Load(StaticConfig(base))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	require.NoError(t, err)

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Write([]byte(`{}`)))
	expectEvent(t, ch, EventDataChanged)

	require.NoError(t, s.Erase())
	expectEvent(t, ch, EventDataErased)
}

func expectEvent(t *testing.T, ch <-chan Event, want EventType) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed")
			}
			if evt.Type == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", want)
		}
	}
}

func TestEventThrottleKeepsLastState(t *testing.T) {
	got := make(chan Event, 4)
	th := newEventThrottle(10 * time.Millisecond)
	defer th.Stop()
	send := func(ev Event) { got <- ev }

	th.Enqueue(Event{Type: EventDataErased}, send)
	th.Enqueue(Event{Type: EventDataChanged}, send)

	select {
	case ev := <-got:
		assert.Equal(t, EventDataChanged, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("unexpected extra event %v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
