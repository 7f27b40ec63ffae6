package state

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// UpdateComponentCheck replaces the component with the same id and stamps
// LastChecked with the current time, whatever the caller supplied.
func (s *Store) UpdateComponentCheck(check model.ComponentCheck) (model.ComponentCheck, bool) {
	_, ok := s.apply(OpUpdateComponent, check.ID, func(d *model.AppData, now time.Time) bool {
		i := indexOf(d.ComponentChecks, func(c model.ComponentCheck) bool { return c.ID == check.ID })
		if i < 0 {
			return false
		}
		check.LastChecked = model.At(now)
		d.ComponentChecks[i] = check
		return true
	})
	return check, ok
}
