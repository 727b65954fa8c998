package constants

const (
	// Setting keys as persisted in the settings namespace
	SettingDailyWaterGoal          = "daily_water_goal"
	SettingReminderIntervalMinutes = "reminder_interval_minutes"
	SettingRemindersEnabled        = "reminders_enabled"
	SettingAppTheme                = "app_theme"
	SettingNotificationsEnabled    = "notifications_enabled"
	SettingFirstLaunchCompleted    = "first_launch_completed"

	// Default Settings Values
	DefaultDailyWaterGoal          = 8
	DefaultReminderIntervalMinutes = 60
	DefaultRemindersEnabled        = false
	DefaultAppTheme                = "dark"
	DefaultNotificationsEnabled    = true

	// Ranges the UI layer is expected to enforce. The core persists
	// whatever it is given; these are a caller contract only.
	MinDailyWaterGoal          = 1
	MaxDailyWaterGoal          = 20
	MinReminderIntervalMinutes = 15
	MaxReminderIntervalMinutes = 480
)
