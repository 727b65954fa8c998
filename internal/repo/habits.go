package repo

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/storage"
)

// Habits is the typed view over the habits namespace.
type Habits struct {
	store storage.Provider
}

func NewHabits(store storage.Provider) *Habits {
	return &Habits{store: store}
}

func (r *Habits) load() ([]models.HabitEntry, error) {
	records, err := r.store.LoadCollection(storage.NamespaceHabits)
	if err != nil {
		return nil, err
	}
	return decode[models.HabitEntry](storage.NamespaceHabits, records)
}

func (r *Habits) save(habits []models.HabitEntry) error {
	records, err := encode(storage.NamespaceHabits, habits)
	if err != nil {
		return err
	}
	return r.store.SaveCollection(storage.NamespaceHabits, records)
}

// Add creates a habit for today and persists it.
func (r *Habits) Add(text string) (models.HabitEntry, error) {
	habits, err := r.load()
	if err != nil {
		return models.HabitEntry{}, err
	}

	habit := models.HabitEntry{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().Format(constants.DateFormat),
	}

	habits = append(habits, habit)
	if err := r.save(habits); err != nil {
		return models.HabitEntry{}, err
	}
	return habit, nil
}

// Update replaces the first habit with a matching id. An unknown id is a
// silent no-op, not an error: the UI never updates a nonexistent habit on
// purpose, and a delete-then-toggle race must not crash.
func (r *Habits) Update(habit models.HabitEntry) error {
	habits, err := r.load()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID == habit.ID {
			habits[i] = habit
			return r.save(habits)
		}
	}
	return nil
}

// SetCompleted toggles completion, stamping CompletedAt on the transition
// to done and clearing it on the way back.
func (r *Habits) SetCompleted(id string, completed bool) error {
	habits, err := r.load()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID == id {
			habits[i].IsCompleted = completed
			if completed {
				habits[i].CompletedAt = time.Now().Format(time.RFC3339)
			} else {
				habits[i].CompletedAt = ""
			}
			return r.save(habits)
		}
	}
	return nil
}

// Rename changes a habit's label in place. Unknown id is a no-op.
func (r *Habits) Rename(id, text string) error {
	habits, err := r.load()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID == id {
			habits[i].Text = text
			return r.save(habits)
		}
	}
	return nil
}

// Delete rebuilds the collection without the matching habit. Deleting an
// id that does not exist is a no-op, so delete is idempotent.
func (r *Habits) Delete(id string) error {
	habits, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]models.HabitEntry, 0, len(habits))
	for _, habit := range habits {
		if habit.ID != id {
			kept = append(kept, habit)
		}
	}
	return r.save(kept)
}

// All returns every habit, most recent day first.
func (r *Habits) All() ([]models.HabitEntry, error) {
	habits, err := r.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].CreatedAt > habits[j].CreatedAt
	})
	return habits, nil
}

// ForDate returns the habits belonging to a day. CreatedAt uses the
// lexicographically sortable date format, so a prefix match covers both
// plain dates and any timestamped legacy values.
func (r *Habits) ForDate(date string) ([]models.HabitEntry, error) {
	habits, err := r.All()
	if err != nil {
		return nil, err
	}

	matched := make([]models.HabitEntry, 0, len(habits))
	for _, habit := range habits {
		if strings.HasPrefix(habit.CreatedAt, date) {
			matched = append(matched, habit)
		}
	}
	return matched, nil
}
