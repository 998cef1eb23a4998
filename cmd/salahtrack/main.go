package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/salahtrack/internal/cli"
	"github.com/julianstephens/salahtrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/salahtrack/salahtrack.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize salahtrack storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive tracker." default:"1"`
	Onboard cli.OnboardCmd `cmd:"" help:"Set up your profile and preferences."`
	Log     cli.LogCmd     `cmd:"" help:"Log a prayer status."`
	Day     cli.DayCmd     `cmd:"" help:"Show prayers for a day."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streaks and consistency."`
	Cal     cli.CalCmd     `cmd:"" help:"Show a month calendar."`
	Year    cli.YearCmd    `cmd:"" help:"Show a year heatmap."`
	Export  cli.ExportCmd  `cmd:"" help:"Export records to CSV."`
	Import  cli.ImportCmd  `cmd:"" help:"Import records from CSV."`
	Clear   cli.ClearCmd   `cmd:"" help:"Delete all prayer records."`
	Remind  cli.RemindCmd  `cmd:"" help:"Daily logging reminder."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("salahtrack"),
		kong.Description("Dual-calendar daily prayer tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Storage backend follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
