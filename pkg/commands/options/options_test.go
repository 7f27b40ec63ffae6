package options

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestGearPatchOnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "gear"}
	o := &GearOptions{}
	AddGearArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--owned", "--price", "45"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	p := o.Patch(cmd)
	if p.Owned == nil || !*p.Owned {
		t.Fatalf("expected owned set, got %v", p.Owned)
	}
	if p.Price == nil || *p.Price != 45 {
		t.Fatalf("expected price 45, got %v", p.Price)
	}
	if p.Category != nil || p.Priority != nil || p.Name != nil {
		t.Fatalf("expected defaults left unset, got %+v", p)
	}
}

func TestTripPatchLocations(t *testing.T) {
	cmd := &cobra.Command{Use: "trip"}
	o := &TripOptions{}
	AddTripArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--location", "Bern", "--location", "Chur"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	p := o.Patch(cmd)
	if p.Locations == nil || len(*p.Locations) != 2 {
		t.Fatalf("expected two locations, got %v", p.Locations)
	}
	if p.EndOdometer != nil {
		t.Fatalf("expected end odometer unset")
	}
}

func TestBikePatchNilWithoutFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "bike"}
	o := &BikeOptions{}
	AddBikeArgs(cmd, o)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p := o.Patch(cmd); p != nil {
		t.Fatalf("expected nil patch, got %+v", p)
	}

	if err := cmd.ParseFlags([]string{"--year", "2021"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := o.Patch(cmd)
	if p == nil || p.Year == nil || *p.Year != 2021 {
		t.Fatalf("expected year 2021, got %+v", p)
	}
}

func TestResolveOutput(t *testing.T) {
	tests := map[string]struct {
		opts OutputOptions
		want string
		err  bool
	}{
		"tables":      {opts: OutputOptions{}, want: ""},
		"json flag":   {opts: OutputOptions{JSON: true}, want: "json"},
		"yaml":        {opts: OutputOptions{Format: "YAML"}, want: "yaml"},
		"format wins": {opts: OutputOptions{JSON: true, Format: "yaml"}, want: "yaml"},
		"unknown":     {opts: OutputOptions{Format: "xml"}, err: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.opts.Resolve()
			if tc.err {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap: %q", got)
	}
	if got := Wrap("  kilometres  ", 4); got != "kilometres" {
		t.Fatalf("expected a long word on its own line, got %q", got)
	}
}

func TestHelp(t *testing.T) {
	got := Help("first para", "second   para")
	if got != "first para\n\nsecond para" {
		t.Fatalf("unexpected help: %q", got)
	}
}

func TestIDArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "finish"}

	o := &IDOptions{}
	if err := o.OptionalID("trip")(cmd, nil); err != nil || o.ID != "" {
		t.Fatalf("expected no id and no error, got %q %v", o.ID, err)
	}
	if err := o.OptionalID("trip")(cmd, []string{" trip-1 "}); err != nil || o.ID != "trip-1" {
		t.Fatalf("expected trip-1, got %q %v", o.ID, err)
	}
	if err := o.OptionalID("trip")(cmd, []string{"a", "b"}); err == nil {
		t.Fatalf("expected error for two ids")
	}

	r := &IDOptions{}
	if err := r.RequireID("gear")(cmd, nil); err == nil {
		t.Fatalf("expected error without an id")
	}
	if err := r.RequireID("gear")(cmd, []string{"  "}); err == nil {
		t.Fatalf("expected error for a blank id")
	}
}
