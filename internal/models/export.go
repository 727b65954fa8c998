package models

// Export is a read-only snapshot of everything the store holds, suitable
// for backup. It is not a sync format.
type Export struct {
	Habits       []HabitEntry `json:"habits"`
	MoodEntries  []MoodEntry  `json:"mood_entries"`
	WaterEntries []WaterEntry `json:"water_entries"`
	Settings     Settings     `json:"settings"`
	ExportDate   string       `json:"export_date"` // YYYY-MM-DD
}
