package state

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// CompleteMaintenanceTask stamps the task done now, schedules its next due
// date, bumps the streak and regenerates its calendar event. Unknown ids are
// a no-op reported as false.
func (s *Store) CompleteMaintenanceTask(id string) (model.MaintenanceTask, bool) {
	var task model.MaintenanceTask
	eventID := s.newID("event")
	_, ok := s.apply(OpCompleteTask, id, func(d *model.AppData, now time.Time) bool {
		i := indexOf(d.MaintenanceTasks, func(t model.MaintenanceTask) bool { return t.ID == id })
		if i < 0 {
			return false
		}
		t := &d.MaintenanceTasks[i]
		t.LastCompleted = model.At(now)
		t.NextDue = model.At(now.AddDate(0, 0, t.Frequency))
		t.Completed = true
		t.Streak++
		task = *t
		scheduleLinkedEvent(d, task, eventID)
		return true
	})
	return task, ok
}

// ResetMaintenanceTask clears the current cycle. The streak is kept.
func (s *Store) ResetMaintenanceTask(id string) (model.MaintenanceTask, bool) {
	var task model.MaintenanceTask
	_, ok := s.apply(OpResetTask, id, func(d *model.AppData, _ time.Time) bool {
		i := indexOf(d.MaintenanceTasks, func(t model.MaintenanceTask) bool { return t.ID == id })
		if i < 0 {
			return false
		}
		t := &d.MaintenanceTasks[i]
		t.LastCompleted = model.Timestamp{}
		t.NextDue = model.Timestamp{}
		t.Completed = false
		task = *t
		return true
	})
	return task, ok
}

// scheduleLinkedEvent keeps exactly one recurring event per task: every event
// linked to the task is dropped and a new one is placed on its next due date.
func scheduleLinkedEvent(d *model.AppData, task model.MaintenanceTask, eventID string) {
	kept := d.CalendarEvents[:0]
	for _, e := range d.CalendarEvents {
		if e.LinkedTaskID != task.ID {
			kept = append(kept, e)
		}
	}
	typ := model.EventMaintenance
	if task.Type == model.TaskWash {
		typ = model.EventCleaning
	}
	d.CalendarEvents = append(kept, model.CalendarEvent{
		ID:           eventID,
		Date:         task.NextDue,
		Type:         typ,
		Title:        task.Name,
		Description:  task.Description,
		Icon:         taskIcon(task.Type),
		Recurring:    true,
		LinkedTaskID: task.ID,
	})
}

func taskIcon(t model.TaskType) string {
	switch t {
	case model.TaskWash:
		return "🧼"
	case model.TaskChainLube:
		return "⛓️"
	case model.TaskChainClean:
		return "🔗"
	default:
		return "🔧"
	}
}
