package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/app"
)

// changed returns &v when the flag was set on the command line.
func changed[T any](cmd *cobra.Command, flag string, v T) *T {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}

// GearOptions
type GearOptions struct {
	Name       string
	Category   string
	Priority   string
	Owned      bool
	Price      float64
	TargetDate string
	Notes      string
}

func AddGearArgs(cmd *cobra.Command, o *GearOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Item name.")
	cmd.Flags().StringVar(&o.Category, "category", "accessories",
		"One of helmet, jacket, gloves, boots, pants or accessories.")
	cmd.Flags().StringVar(&o.Priority, "priority", "medium", "One of high, medium or low.")
	cmd.Flags().BoolVar(&o.Owned, "owned", false, "The item is already owned.")
	cmd.Flags().Float64Var(&o.Price, "price", 0, "Price of the item.")
	cmd.Flags().StringVar(&o.TargetDate, "target", "", "Date to buy by.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Free-form notes.")
}

// Patch holds only the flags given on the command line.
func (o *GearOptions) Patch(cmd *cobra.Command) app.GearPatch {
	return app.GearPatch{
		Name:       changed(cmd, "name", o.Name),
		Category:   changed(cmd, "category", o.Category),
		Priority:   changed(cmd, "priority", o.Priority),
		Owned:      changed(cmd, "owned", o.Owned),
		Price:      changed(cmd, "price", o.Price),
		TargetDate: changed(cmd, "target", o.TargetDate),
		Notes:      changed(cmd, "notes", o.Notes),
	}
}

// EventOptions
type EventOptions struct {
	Title       string
	Date        string
	Type        string
	Description string
	Icon        string
	Completed   bool
	Recurring   bool
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "Event title.")
	cmd.Flags().StringVar(&o.Date, "on", "", `Event date, example: --on="2020-2-28" or --on="2/28".`)
	cmd.Flags().StringVar(&o.Type, "type", "custom", "One of maintenance, cleaning, service or custom.")
	cmd.Flags().StringVar(&o.Description, "description", "", "Longer description.")
	cmd.Flags().StringVar(&o.Icon, "icon", "", "Emoji shown next to the title.")
	cmd.Flags().BoolVar(&o.Completed, "done", false, "Mark the event done.")
	cmd.Flags().BoolVar(&o.Recurring, "recurring", false, "The event repeats.")
}

func (o *EventOptions) Patch(cmd *cobra.Command) app.EventPatch {
	return app.EventPatch{
		Title:       changed(cmd, "title", o.Title),
		Date:        changed(cmd, "on", o.Date),
		Type:        changed(cmd, "type", o.Type),
		Description: changed(cmd, "description", o.Description),
		Icon:        changed(cmd, "icon", o.Icon),
		Completed:   changed(cmd, "done", o.Completed),
		Recurring:   changed(cmd, "recurring", o.Recurring),
	}
}

// FuelOptions
type FuelOptions struct {
	Date          string
	Liters        float64
	PricePerLiter float64
	Odometer      float64
	FuelType      string
	FullTank      bool
	Notes         string
}

func AddFuelArgs(cmd *cobra.Command, o *FuelOptions) {
	cmd.Flags().StringVar(&o.Date, "on", "", "Date of the fill, defaults to now.")
	cmd.Flags().Float64VarP(&o.Liters, "liters", "l", 0, "Liters filled.")
	cmd.Flags().Float64VarP(&o.PricePerLiter, "price", "p", 0, "Price per liter.")
	cmd.Flags().Float64Var(&o.Odometer, "odometer", 0, "Odometer reading at the pump, km.")
	cmd.Flags().StringVar(&o.FuelType, "type", "petrol", "One of petrol, premium or diesel.")
	cmd.Flags().BoolVar(&o.FullTank, "full", true, "The tank was filled up.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Free-form notes.")
}

func (o *FuelOptions) Patch(cmd *cobra.Command) app.FuelPatch {
	return app.FuelPatch{
		Date:          changed(cmd, "on", o.Date),
		Liters:        changed(cmd, "liters", o.Liters),
		PricePerLiter: changed(cmd, "price", o.PricePerLiter),
		Odometer:      changed(cmd, "odometer", o.Odometer),
		FuelType:      changed(cmd, "type", o.FuelType),
		FullTank:      changed(cmd, "full", o.FullTank),
		Notes:         changed(cmd, "notes", o.Notes),
	}
}

// TripOptions
type TripOptions struct {
	Name          string
	StartDate     string
	EndDate       string
	StartOdometer float64
	EndOdometer   float64
	Notes         string
	Locations     []string
}

func AddTripArgs(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Trip name.")
	cmd.Flags().StringVar(&o.StartDate, "start", "", "Start date, defaults to now.")
	cmd.Flags().StringVar(&o.EndDate, "end", "", "End date.")
	cmd.Flags().Float64Var(&o.StartOdometer, "start-odometer", 0, "Odometer at the start, km.")
	cmd.Flags().Float64Var(&o.EndOdometer, "end-odometer", 0, "Odometer at the end, km.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringSliceVar(&o.Locations, "location", nil, "A place along the route; repeat for more.")
}

func (o *TripOptions) Patch(cmd *cobra.Command) app.TripPatch {
	return app.TripPatch{
		Name:          changed(cmd, "name", o.Name),
		StartDate:     changed(cmd, "start", o.StartDate),
		EndDate:       changed(cmd, "end", o.EndDate),
		StartOdometer: changed(cmd, "start-odometer", o.StartOdometer),
		EndOdometer:   changed(cmd, "end-odometer", o.EndOdometer),
		Notes:         changed(cmd, "notes", o.Notes),
		Locations:     changed(cmd, "location", o.Locations),
	}
}

// BikeOptions
type BikeOptions struct {
	Model            string
	Year             int
	PurchaseDate     string
	StartingOdometer float64
}

func AddBikeArgs(cmd *cobra.Command, o *BikeOptions) {
	cmd.Flags().StringVar(&o.Model, "model", "", "Bike make and model.")
	cmd.Flags().IntVar(&o.Year, "year", 0, "Model year.")
	cmd.Flags().StringVar(&o.PurchaseDate, "purchased", "", "Purchase date.")
	cmd.Flags().Float64Var(&o.StartingOdometer, "starting-odometer", 0, "Odometer before the first logged ride, km.")
}

// Patch returns nil when no bike flag was given.
func (o *BikeOptions) Patch(cmd *cobra.Command) *app.BikePatch {
	p := app.BikePatch{
		Model:            changed(cmd, "model", o.Model),
		Year:             changed(cmd, "year", o.Year),
		PurchaseDate:     changed(cmd, "purchased", o.PurchaseDate),
		StartingOdometer: changed(cmd, "starting-odometer", o.StartingOdometer),
	}
	if p == (app.BikePatch{}) {
		return nil
	}
	return &p
}
