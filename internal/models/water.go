package models

// WaterEntry is a snapshot of the day's running total at the moment it was
// saved, not a delta. Every "add a glass" action appends a new entry whose
// Glasses field carries the cumulative count for that day so far, so a day
// accumulates as many rows as there were increments. "Today's total" reads
// the last-inserted row; historical rollups sum a day's rows instead.
type WaterEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:mm
	Glasses int    `json:"glasses"`
	Notes   string `json:"notes,omitempty"`
}

// SortKey orders water entries chronologically, same scheme as moods.
func (w WaterEntry) SortKey() string {
	return w.Date + " " + w.Time
}
