package model

import (
	"fmt"
	"strings"
)

func parseEnum[T ~string](kind, s string, valid ...T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	for _, ok := range valid {
		if v == ok {
			return v, nil
		}
	}
	names := make([]string, len(valid))
	for i, ok := range valid {
		names[i] = string(ok)
	}
	return "", fmt.Errorf("unknown %s %q (expected one of %s)", kind, s, strings.Join(names, ", "))
}

func ParseTaskType(s string) (TaskType, error) {
	return parseEnum("task type", s, TaskWash, TaskChainLube, TaskChainClean, TaskComponentCheck)
}

func ParseComponentCategory(s string) (ComponentCategory, error) {
	return parseEnum("component category", s,
		ComponentEngine, ComponentBrakes, ComponentTires, ComponentLights, ComponentFluids, ComponentOther)
}

func ParseStatus(s string) (Status, error) {
	return parseEnum("status", s, StatusGood, StatusWarning, StatusCritical)
}

func ParseGearCategory(s string) (GearCategory, error) {
	return parseEnum("gear category", s,
		GearHelmet, GearJacket, GearGloves, GearBoots, GearPants, GearAccessories)
}

func ParsePriority(s string) (Priority, error) {
	return parseEnum("priority", s, PriorityHigh, PriorityMedium, PriorityLow)
}

func ParseEventType(s string) (EventType, error) {
	return parseEnum("event type", s, EventMaintenance, EventCleaning, EventService, EventCustom)
}

func ParseFuelType(s string) (FuelType, error) {
	return parseEnum("fuel type", s, FuelPetrol, FuelPremium, FuelDiesel)
}
