package repo

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/storage"
)

// Moods is the typed view over the mood_entries namespace. Entries are
// immutable after creation; there is no update-in-place for moods.
type Moods struct {
	store storage.Provider
}

func NewMoods(store storage.Provider) *Moods {
	return &Moods{store: store}
}

func (r *Moods) load() ([]models.MoodEntry, error) {
	records, err := r.store.LoadCollection(storage.NamespaceMoods)
	if err != nil {
		return nil, err
	}
	return decode[models.MoodEntry](storage.NamespaceMoods, records)
}

func (r *Moods) save(moods []models.MoodEntry) error {
	records, err := encode(storage.NamespaceMoods, moods)
	if err != nil {
		return err
	}
	return r.store.SaveCollection(storage.NamespaceMoods, records)
}

// Add records a mood stamped with the current local wall-clock date and
// time. No timezone normalization; the tracker is strictly on-device.
func (r *Moods) Add(emoji, mood, notes string) (models.MoodEntry, error) {
	moods, err := r.load()
	if err != nil {
		return models.MoodEntry{}, err
	}

	now := time.Now()
	entry := models.MoodEntry{
		ID:    uuid.New().String(),
		Emoji: emoji,
		Mood:  mood,
		Date:  now.Format(constants.DateFormat),
		Time:  now.Format(constants.TimeFormat),
		Notes: notes,
	}

	moods = append(moods, entry)
	if err := r.save(moods); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// Delete is idempotent; an unknown id leaves the collection unchanged.
func (r *Moods) Delete(id string) error {
	moods, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]models.MoodEntry, 0, len(moods))
	for _, mood := range moods {
		if mood.ID != id {
			kept = append(kept, mood)
		}
	}
	return r.save(kept)
}

// All returns every mood entry, most recent first.
func (r *Moods) All() ([]models.MoodEntry, error) {
	moods, err := r.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(moods, func(i, j int) bool {
		return moods[i].SortKey() > moods[j].SortKey()
	})
	return moods, nil
}

// ForDate returns the mood entries recorded on a day, most recent first.
func (r *Moods) ForDate(date string) ([]models.MoodEntry, error) {
	moods, err := r.All()
	if err != nil {
		return nil, err
	}

	matched := make([]models.MoodEntry, 0, len(moods))
	for _, mood := range moods {
		if mood.Date == date {
			matched = append(matched, mood)
		}
	}
	return matched, nil
}

// LatestForDate returns the entry with the greatest time on the given day,
// or nil when the day has no entries. HH:mm is zero-padded, so the
// lexicographic maximum is the latest wall-clock entry.
func (r *Moods) LatestForDate(date string) (*models.MoodEntry, error) {
	moods, err := r.ForDate(date)
	if err != nil {
		return nil, err
	}
	if len(moods) == 0 {
		return nil, nil
	}

	latest := moods[0]
	for _, mood := range moods[1:] {
		if mood.Time > latest.Time {
			latest = mood
		}
	}
	return &latest, nil
}
