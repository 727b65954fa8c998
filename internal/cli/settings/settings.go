package settings

import (
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/cli"
	"github.com/BinadaPasandul/pulse/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DailyWaterGoal          *int    `help:"Glasses of water per day (1-20 suggested)."`
	ReminderIntervalMinutes *int    `help:"Water reminder interval in minutes (15-480 suggested)."`
	RemindersEnabled        *bool   `help:"Enable or disable water reminders."`
	AppTheme                *string `help:"UI theme (dark or light)."`
	NotificationsEnabled    *bool   `help:"Enable or disable notifications."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Daily Water Goal:      %d glasses\n", settings.DailyWaterGoal)
		fmt.Printf("  Reminder Interval:     %d min\n", settings.ReminderIntervalMinutes)
		fmt.Printf("  Reminders Enabled:     %v\n", settings.RemindersEnabled)
		fmt.Printf("  App Theme:             %s\n", settings.AppTheme)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		return nil
	}

	updated := false
	if c.DailyWaterGoal != nil {
		if *c.DailyWaterGoal < constants.MinDailyWaterGoal || *c.DailyWaterGoal > constants.MaxDailyWaterGoal {
			return fmt.Errorf("daily water goal must be between %d and %d glasses",
				constants.MinDailyWaterGoal, constants.MaxDailyWaterGoal)
		}
		settings.DailyWaterGoal = *c.DailyWaterGoal
		updated = true
	}
	if c.ReminderIntervalMinutes != nil {
		if *c.ReminderIntervalMinutes < constants.MinReminderIntervalMinutes || *c.ReminderIntervalMinutes > constants.MaxReminderIntervalMinutes {
			return fmt.Errorf("reminder interval must be between %d and %d minutes",
				constants.MinReminderIntervalMinutes, constants.MaxReminderIntervalMinutes)
		}
		settings.ReminderIntervalMinutes = *c.ReminderIntervalMinutes
		updated = true
	}
	if c.RemindersEnabled != nil {
		settings.RemindersEnabled = *c.RemindersEnabled
		updated = true
	}
	if c.AppTheme != nil {
		settings.AppTheme = *c.AppTheme
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
