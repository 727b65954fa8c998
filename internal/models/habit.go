package models

// HabitEntry is a single habit for a single day. CreatedAt doubles as the
// "belongs-to-day" key, so habits added on different days never collide.
type HabitEntry struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"`             // YYYY-MM-DD, immutable
	CompletedAt string `json:"completedAt,omitempty"` // timestamp set on completion
}
