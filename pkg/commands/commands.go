package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/notify"
	"tableflip.dev/cyberride/pkg/store"
)

var (
	output  = &options.OutputOptions{}
	logging = &options.LogOptions{}
	logger  = zap.NewNop()
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cyberride",
		Short: options.Help("Motorcycle maintenance, mileage, fuel, trips and achievements on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.Logger()
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddLogArgs(cmd, logging)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addCheck(topLevel)
	addAdd(topLevel)
	addUpdate(topLevel)
	addStrike(topLevel)
	addTrack(topLevel)
	addFinish(topLevel)
	addStats(topLevel)
	addCalendar(topLevel)
	addBike(topLevel)
	addAchievements(topLevel)
	addReport(topLevel)
	addReset(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// session is an open data file plus the settings it was opened with.
type session struct {
	cfg    store.Config
	app    *app.Service
	format string
}

type runner interface {
	Do(ctx context.Context) error
}

// openSession loads the config, opens the data slot and starts the app
// service with terminal notifications.
func openSession() (*session, error) {
	format, err := output.Resolve()
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	slot, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := app.Open(slot, app.Options{
		Log:           logger,
		Notify:        notify.NewManager(notify.NewTerminal(os.Stderr), cfg.Notifications(), logger),
		LowEfficiency: cfg.LowEfficiency(),
	})
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, app: svc, format: format}, nil
}

// withSession runs the runner build returns against a fresh session.
func withSession(cmd *cobra.Command, build func(s *session) (runner, error)) error {
	cmd.SilenceUsage = true
	s, err := openSession()
	if err != nil {
		return output.HandleError(err)
	}
	defer s.app.Close()

	r, err := build(s)
	if err != nil {
		return output.HandleError(err)
	}
	return output.HandleError(r.Do(cmd.Context()))
}
