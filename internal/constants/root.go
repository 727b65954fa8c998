package constants

const (
	AppName           = "pulse"
	DefaultConfigPath = "~/.config/pulse/pulse.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:mm, 24-hour)
	TimeFormat = "15:04"

	// MaxStreakDays bounds the backward walk when computing consumption
	// streaks so corrupted histories cannot loop forever.
	MaxStreakDays = 3650

	// TrailingWeekDays is the window for weekly rollups, today inclusive.
	TrailingWeekDays = 7
)

// Mood labels form a fixed vocabulary; anything outside it is accepted but
// scores as an "other" mood in wellness computations.
const (
	MoodHappy    = "Happy"
	MoodExcited  = "Excited"
	MoodNeutral  = "Neutral"
	MoodSad      = "Sad"
	MoodStressed = "Stressed"
	MoodGrateful = "Grateful"
	MoodTired    = "Tired"
	MoodAngry    = "Angry"
	MoodAnxious  = "Anxious"
	MoodPeaceful = "Peaceful"
)

// MoodLabels lists the vocabulary in presentation order.
var MoodLabels = []string{
	MoodHappy, MoodExcited, MoodNeutral, MoodSad, MoodStressed,
	MoodGrateful, MoodTired, MoodAngry, MoodAnxious, MoodPeaceful,
}

// MoodEmojis maps each label to its display glyph.
var MoodEmojis = map[string]string{
	MoodHappy:    "😊",
	MoodExcited:  "🤩",
	MoodNeutral:  "😐",
	MoodSad:      "😢",
	MoodStressed: "😫",
	MoodGrateful: "🙏",
	MoodTired:    "😴",
	MoodAngry:    "😠",
	MoodAnxious:  "😰",
	MoodPeaceful: "😌",
}
