// Command demo fills the configured data file with a few weeks of sample
// rides, fill-ups, a trip and some gear.
package main

import (
	"fmt"
	"time"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
	"tableflip.dev/cyberride/pkg/store"
)

func main() {
	cfg, err := store.LoadConfig()
	if err != nil {
		panic(err)
	}
	slot, err := store.Load(cfg)
	if err != nil {
		panic(err)
	}
	svc, err := app.Open(slot, app.Options{})
	if err != nil {
		panic(err)
	}
	defer svc.Close()

	if _, err := svc.SetBike(state.BikeInfo{Model: "Duke 390", Year: 2021, PurchaseDate: time.Now().AddDate(-1, 0, 0), StartingOdometer: 4200}); err != nil {
		panic(err)
	}

	for i, km := range []float64{32, 18.5, 64, 12, 120, 45.5, 27} {
		if _, err := svc.RecordMileage(km, fmt.Sprintf("demo ride %d", i+1)); err != nil {
			panic(err)
		}
	}

	odo := svc.Data().TotalKilometers
	for i, liters := range []float64{11.2, 10.4, 12.1} {
		_, err := svc.AddFuel(model.FuelEntry{
			Date:          model.At(time.Now().AddDate(0, 0, -14+7*i)),
			Liters:        liters,
			PricePerLiter: 1.79,
			Odometer:      odo - 300 + float64(i)*150,
			FuelType:      model.FuelPetrol,
			FullTank:      true,
		})
		if err != nil {
			panic(err)
		}
	}

	for _, g := range []model.RidingGear{
		{Name: "Touring Helmet", Category: model.GearHelmet, Priority: model.PriorityHigh, Owned: true, Price: 320},
		{Name: "Summer Gloves", Category: model.GearGloves, Priority: model.PriorityMedium, Price: 45},
		{Name: "Rain Suit", Category: model.GearPants, Priority: model.PriorityLow, Price: 90},
	} {
		if _, err := svc.AddGear(g); err != nil {
			panic(err)
		}
	}

	if _, err := svc.CompleteTask("chain-lube-1"); err != nil {
		panic(err)
	}
	if _, err := svc.StartTrip("Coast loop", "demo", []string{"Harbor", "Lighthouse"}); err != nil {
		panic(err)
	}

	fmt.Println("demo data written to", slot.Path())
}
