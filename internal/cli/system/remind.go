package system

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/BinadaPasandul/pulse/internal/cli"
	"github.com/BinadaPasandul/pulse/internal/reminder"
)

// RemindCmd runs the water-reminder loop in the foreground until
// interrupted. The loop only ever reads from the store, so it can run
// alongside the CLI and TUI writers.
type RemindCmd struct{}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.RemindersEnabled {
		return fmt.Errorf("reminders are disabled, enable them with 'pulse settings --reminders-enabled'")
	}

	sched := reminder.New(ctx.Store, func(title, body string) {
		fmt.Printf("%s\n%s\n\n", title, body)
	})

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Water reminder running every %d minutes. Ctrl-C to stop.\n",
		settings.ReminderIntervalMinutes)
	return sched.Run(runCtx)
}
