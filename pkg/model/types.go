// Package model defines the records held in the cyberride aggregate.
package model

// TaskType classifies a maintenance task.
type TaskType string

const (
	TaskWash           TaskType = "wash"
	TaskChainLube      TaskType = "chain_lube"
	TaskChainClean     TaskType = "chain_clean"
	TaskComponentCheck TaskType = "component_check"
)

// MaintenanceTask is a recurring chore with a frequency in days.
type MaintenanceTask struct {
	ID            string    `json:"id"`
	Type          TaskType  `json:"type"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Frequency     int       `json:"frequency"`
	LastCompleted Timestamp `json:"lastCompleted"`
	NextDue       Timestamp `json:"nextDue"`
	Completed     bool      `json:"completed"`
	Streak        int       `json:"streak"`
}

type ComponentCategory string

const (
	ComponentEngine ComponentCategory = "engine"
	ComponentBrakes ComponentCategory = "brakes"
	ComponentTires  ComponentCategory = "tires"
	ComponentLights ComponentCategory = "lights"
	ComponentFluids ComponentCategory = "fluids"
	ComponentOther  ComponentCategory = "other"
)

// Status is the health of a checked component.
type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

type ComponentCheck struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    ComponentCategory `json:"category"`
	Status      Status            `json:"status"`
	LastChecked Timestamp         `json:"lastChecked"`
	Notes       string            `json:"notes"`
}

// MileageEntry records a distance delta and the odometer total after it.
type MileageEntry struct {
	ID              string    `json:"id"`
	Date            Timestamp `json:"date"`
	Kilometers      float64   `json:"kilometers"`
	TotalKilometers float64   `json:"totalKilometers"`
	Notes           string    `json:"notes"`
}

type AchievementCategory string

const (
	AchievementMaintenance AchievementCategory = "maintenance"
	AchievementMileage     AchievementCategory = "mileage"
	AchievementGear        AchievementCategory = "gear"
	AchievementSpecial     AchievementCategory = "special"
)

// Achievement unlocks once Progress reaches Target and stays unlocked.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  Timestamp           `json:"unlockedAt"`
	Progress    float64             `json:"progress"`
	Target      float64             `json:"target"`
	Category    AchievementCategory `json:"category"`
}

type GearCategory string

const (
	GearHelmet      GearCategory = "helmet"
	GearJacket      GearCategory = "jacket"
	GearGloves      GearCategory = "gloves"
	GearBoots       GearCategory = "boots"
	GearPants       GearCategory = "pants"
	GearAccessories GearCategory = "accessories"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type RidingGear struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Category   GearCategory `json:"category"`
	Owned      bool         `json:"owned"`
	Priority   Priority     `json:"priority"`
	TargetDate Timestamp    `json:"targetDate"`
	Price      float64      `json:"price"`
	Notes      string       `json:"notes"`
}

type EventType string

const (
	EventMaintenance EventType = "maintenance"
	EventCleaning    EventType = "cleaning"
	EventService     EventType = "service"
	EventCustom      EventType = "custom"
)

// CalendarEvent is a dated entry on the calendar. Events carrying a
// LinkedTaskID are regenerated whenever that task is completed.
type CalendarEvent struct {
	ID           string    `json:"id"`
	Date         Timestamp `json:"date"`
	Type         EventType `json:"type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Completed    bool      `json:"completed"`
	Icon         string    `json:"icon,omitempty"`
	Recurring    bool      `json:"recurring,omitempty"`
	LinkedTaskID string    `json:"linkedTaskId,omitempty"`
}

type FuelType string

const (
	FuelPetrol  FuelType = "petrol"
	FuelPremium FuelType = "premium"
	FuelDiesel  FuelType = "diesel"
)

// FuelEntry is a fill-up. TotalCost is fixed when the entry is written.
type FuelEntry struct {
	ID            string    `json:"id"`
	Date          Timestamp `json:"date"`
	Liters        float64   `json:"liters"`
	PricePerLiter float64   `json:"pricePerLiter"`
	TotalCost     float64   `json:"totalCost"`
	Odometer      float64   `json:"odometer"`
	FuelType      FuelType  `json:"fuelType"`
	FullTank      bool      `json:"fullTank"`
	Notes         string    `json:"notes"`
}

// TripEntry is a named ride. A trip without an EndDate is in progress.
type TripEntry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StartDate     Timestamp `json:"startDate"`
	EndDate       Timestamp `json:"endDate"`
	StartOdometer float64   `json:"startOdometer"`
	EndOdometer   *float64  `json:"endOdometer"`
	Distance      float64   `json:"distance"`
	Notes         string    `json:"notes"`
	Photos        []string  `json:"photos,omitempty"`
	Locations     []string  `json:"locations"`
}

// InProgress reports whether the trip has not ended yet.
func (t TripEntry) InProgress() bool {
	return !t.EndDate.Set()
}

// AppData is the aggregate root; every record lives inside it.
type AppData struct {
	MaintenanceTasks []MaintenanceTask `json:"maintenanceTasks"`
	ComponentChecks  []ComponentCheck  `json:"componentChecks"`
	MileageEntries   []MileageEntry    `json:"mileageEntries"`
	Achievements     []Achievement     `json:"achievements"`
	RidingGear       []RidingGear      `json:"ridingGear"`
	CalendarEvents   []CalendarEvent   `json:"calendarEvents"`
	FuelEntries      []FuelEntry       `json:"fuelEntries"`
	TripEntries      []TripEntry       `json:"tripEntries"`
	DismissedEvents  []string          `json:"dismissedEvents"`
	TotalKilometers  float64           `json:"totalKilometers"`
	BikeModel        string            `json:"bikeModel"`
	BikeYear         int               `json:"bikeYear"`
	BikePurchaseDate Timestamp         `json:"bikePurchaseDate"`
}
