package models

// MoodEntry records how the user felt at a point in time. Entries are
// immutable after creation; the only lifecycle operation is delete.
type MoodEntry struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Mood  string `json:"mood"` // label from the fixed vocabulary
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:mm, 24-hour
	Notes string `json:"notes,omitempty"`
}

// SortKey orders mood entries chronologically. Both components are
// zero-padded, so lexicographic comparison matches wall-clock order.
func (m MoodEntry) SortKey() string {
	return m.Date + " " + m.Time
}
