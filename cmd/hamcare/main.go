package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/cli/care"
	"github.com/hamcare-app/hamcare/internal/cli/profiles"
	"github.com/hamcare-app/hamcare/internal/cli/schedules"
	"github.com/hamcare-app/hamcare/internal/cli/system"
	"github.com/hamcare-app/hamcare/internal/config"
	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/errors"
	"github.com/hamcare-app/hamcare/internal/logger"
	"github.com/hamcare-app/hamcare/internal/notifier"
	"github.com/hamcare-app/hamcare/internal/profile"
	"github.com/hamcare-app/hamcare/internal/schedule"
	"github.com/hamcare-app/hamcare/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Path    string `help:"Storage path: a directory for the diskv backend, a database file for sqlite." type:"string"`
	Backend string `help:"Storage backend (diskv or sqlite)." enum:"diskv,sqlite,"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd        `cmd:"" help:"Initialize hamcare storage."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Calendar schedules.CalendarCmd `cmd:"" help:"Print the month calendar with planned days."`
	Schedule struct {
		Add      schedules.AddCmd      `cmd:"" help:"Schedule care events for a day."`
		List     schedules.ListCmd     `cmd:"" help:"List schedule entries."`
		Upcoming schedules.UpcomingCmd `cmd:"" help:"List entries from today onward."`
		Events   schedules.EventsCmd   `cmd:"" help:"List the available event types."`
	} `cmd:"" help:"Manage the care schedule."`
	Care struct {
		Show care.ShowCmd `cmd:"" help:"Show a periodic checklist." default:"1"`
		Save care.SaveCmd `cmd:"" help:"Save a periodic checklist."`
	} `cmd:"" help:"Work with the daily/weekly/monthly checklists."`
	Profile struct {
		Show profiles.ShowCmd `cmd:"" help:"Show the hamster profile." default:"1"`
		Set  profiles.SetCmd  `cmd:"" help:"Update profile fields."`
	} `cmd:"" help:"Manage the hamster profile."`
	Sound  profiles.SoundCmd `cmd:"" help:"Toggle app sounds."`
	Notify system.NotifyCmd  `cmd:"" hidden:"" help:"Re-send today's reminders (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hamcare"),
		kong.Description("Hamster care companion: calendar, schedule and care checklists"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.FromFlags(CLI.Path, CLI.Backend)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: cfg.LogRoot()}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	kv, err := storage.Open(cfg.Backend, cfg.Path)
	if err != nil {
		errors.Fatal(err)
	}
	defer kv.Close()

	appCtx := &cli.Context{
		KV:       kv,
		Schedule: schedule.New(kv),
		Notifier: notifier.New(),
		Config:   cfg,
	}

	// One-time welcome on the first real command.
	if sel := ctx.Selected(); sel != nil && sel.Name != "init" && !profile.FinishedOnboarding(kv) {
		fmt.Println("Welcome to hamcare! Set up your hamster with 'hamcare profile set'.")
		if err := profile.MarkOnboardingDone(kv); err != nil {
			logger.Warn("Failed to record onboarding", "error", err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		kv.Close()
		errors.Fatal(err)
	}
}
