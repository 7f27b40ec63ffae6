package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(cyberride completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(cyberride completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// quietApp opens the data without notifications for shell completion.
func quietApp() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	slot, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.Open(slot, app.Options{})
}

func taskCompletions() []string {
	svc, err := quietApp()
	if err != nil {
		return nil
	}
	defer svc.Close()
	tasks := svc.Data().MaintenanceTasks
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID+"\t"+t.Name)
	}
	return ids
}

func componentCompletions() []string {
	svc, err := quietApp()
	if err != nil {
		return nil
	}
	defer svc.Close()
	checks := svc.Data().ComponentChecks
	ids := make([]string, 0, len(checks))
	for _, c := range checks {
		ids = append(ids, c.ID+"\t"+c.Name)
	}
	return ids
}
