package models

import (
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/constants"
)

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		DailyWaterGoal:          constants.DefaultDailyWaterGoal,
		ReminderIntervalMinutes: constants.DefaultReminderIntervalMinutes,
		RemindersEnabled:        constants.DefaultRemindersEnabled,
		AppTheme:                constants.DefaultAppTheme,
		NotificationsEnabled:    constants.DefaultNotificationsEnabled,
		FirstLaunchCompleted:    false,
	}
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingDailyWaterGoal:
			if _, err := fmt.Sscanf(value, "%d", &settings.DailyWaterGoal); err != nil {
				return Settings{}, fmt.Errorf("parsing daily_water_goal: %w", err)
			}
		case constants.SettingReminderIntervalMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.ReminderIntervalMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_interval_minutes: %w", err)
			}
		case constants.SettingRemindersEnabled:
			settings.RemindersEnabled = value == "true"
		case constants.SettingAppTheme:
			settings.AppTheme = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingFirstLaunchCompleted:
			settings.FirstLaunchCompleted = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingDailyWaterGoal:          fmt.Sprintf("%d", settings.DailyWaterGoal),
		constants.SettingReminderIntervalMinutes: fmt.Sprintf("%d", settings.ReminderIntervalMinutes),
		constants.SettingRemindersEnabled:        fmt.Sprintf("%v", settings.RemindersEnabled),
		constants.SettingAppTheme:                settings.AppTheme,
		constants.SettingNotificationsEnabled:    fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingFirstLaunchCompleted:    fmt.Sprintf("%v", settings.FirstLaunchCompleted),
	}
}
