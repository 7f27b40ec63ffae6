// Package key provides CLI helpers to display the value legend.
package key

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cyberride/pkg/model"
)

// Key prints the accepted values for statuses, categories and types.
type Key struct{}

type row struct {
	symbol  string
	meaning string
}

// Do renders the legend to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	k.Key(ctx, "Status", []row{
		{model.StatusGood.Symbol(), "good: nothing to do"},
		{model.StatusWarning.Symbol(), "warning: keep an eye on it"},
		{model.StatusCritical.Symbol(), "critical: fix before riding"},
	})
	k.Key(ctx, "Priority", []row{
		{string(model.PriorityHigh), "buy next"},
		{string(model.PriorityMedium), "when the budget allows"},
		{string(model.PriorityLow), "nice to have"},
	})
	k.Key(ctx, "Values", []row{
		{"gear", join(model.GearHelmet, model.GearJacket, model.GearGloves, model.GearBoots, model.GearPants, model.GearAccessories)},
		{"event", join(model.EventMaintenance, model.EventCleaning, model.EventService, model.EventCustom)},
		{"fuel", join(model.FuelPetrol, model.FuelPremium, model.FuelDiesel)},
		{"component", join(model.ComponentEngine, model.ComponentBrakes, model.ComponentTires, model.ComponentLights, model.ComponentFluids, model.ComponentOther)},
	})
	return nil
}

func join[T ~string](vs ...T) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

// Key renders one legend table.
func (k *Key) Key(_ context.Context, title string, rows []row) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Meaning"))
	for _, r := range rows {
		tbl.AddRow(r.symbol, r.meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}
