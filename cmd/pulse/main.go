package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/BinadaPasandul/pulse/internal/cli"
	"github.com/BinadaPasandul/pulse/internal/cli/settings"
	"github.com/BinadaPasandul/pulse/internal/cli/system"
	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/errors"
	"github.com/BinadaPasandul/pulse/internal/logger"
	"github.com/BinadaPasandul/pulse/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. Files ending in .json use the JSON store, everything else SQLite." type:"string" default:"~/.config/pulse/pulse.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize pulse storage."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit    cli.HabitCmd         `cmd:"" help:"Track daily habits."`
	Mood     cli.MoodCmd          `cmd:"" help:"Track how you feel."`
	Water    cli.WaterCmd         `cmd:"" help:"Track water intake."`
	Stats    cli.StatsCmd         `cmd:"" help:"Show wellness statistics."`
	Streak   cli.StreakCmd        `cmd:"" help:"Show the water goal streak."`
	Score    cli.ScoreCmd         `cmd:"" help:"Show today's wellness score."`
	Export   cli.ExportCmd        `cmd:"" help:"Export all data as a JSON snapshot."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   system.RemindCmd     `cmd:"" help:"Run the water reminder in the foreground."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness tracker: habits, mood, and water intake"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command; init handles its own setup.
	if selected := ctx.Selected(); selected != nil && selected.Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
