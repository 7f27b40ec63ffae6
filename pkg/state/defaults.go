package state

import (
	"slices"
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// DefaultBikeModel is the name used until the rider sets one.
const DefaultBikeModel = "My Bike"

func defaultTasks() []model.MaintenanceTask {
	return []model.MaintenanceTask{
		{
			ID:          "wash-1",
			Type:        model.TaskWash,
			Name:        "Wash Motorcycle",
			Description: "Full motorcycle wash and cleaning",
			Frequency:   30,
		},
		{
			ID:          "chain-lube-1",
			Type:        model.TaskChainLube,
			Name:        "Chain Lubrication",
			Description: "Apply chain lube to keep it running smooth",
			Frequency:   14,
		},
		{
			ID:          "chain-clean-1",
			Type:        model.TaskChainClean,
			Name:        "Chain Cleaning",
			Description: "Deep clean the chain",
			Frequency:   14,
		},
	}
}

func defaultComponents() []model.ComponentCheck {
	return []model.ComponentCheck{
		{ID: "comp-1", Name: "Engine Oil", Category: model.ComponentFluids, Status: model.StatusGood},
		{ID: "comp-2", Name: "Brake Pads", Category: model.ComponentBrakes, Status: model.StatusGood},
		{ID: "comp-3", Name: "Tire Pressure", Category: model.ComponentTires, Status: model.StatusGood},
		{ID: "comp-4", Name: "Headlight", Category: model.ComponentLights, Status: model.StatusGood},
		{ID: "comp-5", Name: "Coolant Level", Category: model.ComponentFluids, Status: model.StatusGood},
	}
}

func achievement(id, name, description, icon string, target float64, category model.AchievementCategory) model.Achievement {
	return model.Achievement{
		ID:          id,
		Name:        name,
		Description: description,
		Icon:        icon,
		Target:      target,
		Category:    category,
	}
}

func defaultAchievements() []model.Achievement {
	return []model.Achievement{
		achievement("ach-1", "First Ride", "Log your first kilometer", "🏍️", 1, model.AchievementMileage),
		achievement("ach-2", "Century Club", "Ride 100 kilometers", "💯", 100, model.AchievementMileage),
		achievement("ach-3", "Thousand Miles", "Ride 1000 kilometers", "🌟", 1000, model.AchievementMileage),
		achievement("ach-4", "Clean Machine", "Wash your bike 5 times", "✨", 5, model.AchievementMaintenance),
		achievement("ach-5", "Chain Master", "Lube chain 10 times", "⛓️", 10, model.AchievementMaintenance),
		achievement("ach-6", "Safety First", "Complete all component checks", "🔧", 5, model.AchievementMaintenance),
		achievement("ach-7", "Gear Up", "Add 3 riding gear items to wishlist", "🧥", 3, model.AchievementGear),
		achievement("ach-8", "Fully Equipped", "Own all essential riding gear", "🎯", 5, model.AchievementGear),
		achievement("ach-9", "Maintenance Streak", "Complete maintenance 7 days in a row", "🔥", 7, model.AchievementSpecial),
		achievement("ach-10", "Road Warrior", "Ride 5000 kilometers", "⚡", 5000, model.AchievementMileage),
		achievement("ach-11", "Night Rider", "Log a journey past midnight", "🌙", 1, model.AchievementSpecial),
		achievement("ach-12", "Fuel Hoarder", "Fill up 20 times", "⛽", 20, model.AchievementSpecial),
		achievement("ach-13", "Chain Obsessed", "Lube your chain 50 times", "🔗", 50, model.AchievementMaintenance),
		achievement("ach-14", "Expedition Leader", "Complete 3 long trips", "🗺️", 3, model.AchievementSpecial),
		achievement("ach-15", "Speed Demon", "Log 200km in a single day", "💨", 1, model.AchievementMileage),
		achievement("ach-16", "Penny Pincher", "Track fuel for 10 consecutive fills", "💰", 10, model.AchievementSpecial),
		achievement("ach-17", "OCD Mechanic", "Complete all maintenance tasks in one day", "🔧", 1, model.AchievementMaintenance),
		achievement("ach-18", "Birthday Ride", "Log a journey on your bike's purchase anniversary", "🎂", 1, model.AchievementSpecial),
	}
}

// DefaultCalendarEvents returns the built-in events scheduled relative to now.
func DefaultCalendarEvents(now time.Time) []model.CalendarEvent {
	in := func(days int) model.Timestamp {
		return model.At(now.AddDate(0, 0, days))
	}
	return []model.CalendarEvent{
		{
			ID:           "default-wash",
			Date:         in(30),
			Type:         model.EventCleaning,
			Title:        "Wash Motorcycle",
			Description:  "Monthly motorcycle wash",
			Recurring:    true,
			LinkedTaskID: "wash-1",
			Icon:         "🧼",
		},
		{
			ID:           "default-chain-lube",
			Date:         in(14),
			Type:         model.EventMaintenance,
			Title:        "Chain Lubrication",
			Description:  "Bi-weekly chain lubrication",
			Recurring:    true,
			LinkedTaskID: "chain-lube-1",
			Icon:         "⛓️",
		},
		{
			ID:           "default-chain-clean",
			Date:         in(14),
			Type:         model.EventMaintenance,
			Title:        "Chain Cleaning",
			Description:  "Deep clean the chain",
			Recurring:    true,
			LinkedTaskID: "chain-clean-1",
			Icon:         "🔗",
		},
		{
			ID:          "default-engine-check",
			Date:        in(7),
			Type:        model.EventService,
			Title:       "Engine Oil Check",
			Description: "Check engine oil level and condition",
			Icon:        "🛢️",
		},
		{
			ID:          "default-brake-check",
			Date:        in(10),
			Type:        model.EventService,
			Title:       "Brake System Check",
			Description: "Inspect brake pads and fluid",
			Icon:        "🛑",
		},
		{
			ID:          "default-tire-check",
			Date:        in(7),
			Type:        model.EventService,
			Title:       "Tire Pressure Check",
			Description: "Check and adjust tire pressure",
			Icon:        "🎯",
		},
	}
}

// builtinEventIDs lists the identifiers DefaultCalendarEvents produces.
var builtinEventIDs = []string{
	"default-wash",
	"default-chain-lube",
	"default-chain-clean",
	"default-engine-check",
	"default-brake-check",
	"default-tire-check",
}

func isBuiltinEvent(id string) bool {
	return slices.Contains(builtinEventIDs, id)
}

// Defaults returns a fresh aggregate as seen on first start.
func Defaults(now time.Time) model.AppData {
	return model.AppData{
		MaintenanceTasks: defaultTasks(),
		ComponentChecks:  defaultComponents(),
		MileageEntries:   []model.MileageEntry{},
		Achievements:     defaultAchievements(),
		RidingGear:       []model.RidingGear{},
		CalendarEvents:   DefaultCalendarEvents(now),
		FuelEntries:      []model.FuelEntry{},
		TripEntries:      []model.TripEntry{},
		DismissedEvents:  []string{},
		TotalKilometers:  0,
		BikeModel:        DefaultBikeModel,
		BikeYear:         now.Year(),
		BikePurchaseDate: model.At(now),
	}
}
