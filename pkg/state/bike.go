package state

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// BikeInfo is the settings form for the motorcycle itself.
type BikeInfo struct {
	Model            string
	Year             int
	PurchaseDate     time.Time
	StartingOdometer float64
}

// UpdateBikeInfo stores the bike details and rebuilds the running total as
// the starting odometer plus every logged mileage delta.
func (s *Store) UpdateBikeInfo(info BikeInfo) model.AppData {
	c, _ := s.apply(OpUpdateBike, "", func(d *model.AppData, _ time.Time) bool {
		d.BikeModel = info.Model
		d.BikeYear = info.Year
		d.BikePurchaseDate = model.At(info.PurchaseDate)
		d.TotalKilometers = info.StartingOdometer + LoggedKilometers(*d)
		return true
	})
	return c.Data
}
