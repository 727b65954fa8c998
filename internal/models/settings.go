package models

// Settings represents application-wide settings
type Settings struct {
	DailyWaterGoal          int    `json:"daily_water_goal"`          // glasses per day the user is aiming for
	ReminderIntervalMinutes int    `json:"reminder_interval_minutes"` // how often the water reminder fires
	RemindersEnabled        bool   `json:"reminders_enabled"`         // whether the water reminder is active
	AppTheme                string `json:"app_theme"`                 // "dark" or "light"
	NotificationsEnabled    bool   `json:"notifications_enabled"`     // whether notifications are enabled at all
	FirstLaunchCompleted    bool   `json:"first_launch_completed"`    // whether onboarding has finished
}
