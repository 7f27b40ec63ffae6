package commands

import (
	"fmt"

	"tableflip.dev/cyberride/pkg/prompt"
)

func pickTask(s *session) (string, error) {
	p, err := prompt.Terminal()
	if err != nil {
		return "", fmt.Errorf("requires a task id: %w", err)
	}
	tasks := s.app.Data().MaintenanceTasks
	choices := make([]prompt.Choice, 0, len(tasks))
	for _, t := range tasks {
		choices = append(choices, prompt.Choice{
			ID:      t.ID,
			Label:   t.Name,
			Details: fmt.Sprintf("every %d days, due %s", t.Frequency, t.NextDue.String()),
		})
	}
	return p.Pick("Task", choices)
}

func pickComponent(s *session) (string, error) {
	p, err := prompt.Terminal()
	if err != nil {
		return "", fmt.Errorf("requires a component id: %w", err)
	}
	checks := s.app.Data().ComponentChecks
	choices := make([]prompt.Choice, 0, len(checks))
	for _, c := range checks {
		choices = append(choices, prompt.Choice{
			ID:      c.ID,
			Label:   c.Name,
			Details: c.Status.Symbol() + " " + string(c.Status),
		})
	}
	return p.Pick("Component", choices)
}
