// Package achievements provides the runner that lists and re-evaluates
// achievements.
package achievements

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/printers"
)

// Achievements lists achievements. With Check set it re-evaluates them
// first and reports the newly unlocked ones.
type Achievements struct {
	App    *app.Service
	Check  bool
	ShowID bool
	Output string
}

func (n *Achievements) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list achievements, no app")
	}
	var unlocked []model.Achievement
	if n.Check {
		unlocked = n.App.Store.CheckAchievements()
	}
	all := n.App.Data().Achievements

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	var v any = all
	if n.Check {
		v = map[string]any{"unlocked": unlocked, "achievements": all}
	}
	return pp.Emit(n.Output, v, func(pp *printers.PrettyPrint) {
		for _, a := range unlocked {
			pp.Note("%s unlocked %s", a.Icon, a.Name)
		}
		if n.Check && len(unlocked) == 0 {
			pp.Note("Nothing new")
		}
		pp.Achievements(all...)
	})
}
