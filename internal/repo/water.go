package repo

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/storage"
)

// ErrNothingToRemove is returned when RemoveGlass is called on a day with
// no recorded consumption.
var ErrNothingToRemove = errors.New("no glasses to remove")

// Water is the typed view over the water_entries namespace.
//
// Each saved row is a snapshot of the day's running total, not a delta:
// adding a glass appends a fresh entry carrying todayTotal+1, so a day
// holds as many rows as there were adjustments. Today's total is therefore
// the last-inserted row's value; summing a day's rows is only meaningful
// for historical days in weekly rollups. This asymmetry mirrors the data
// already written by existing installs and is pinned by tests; do not
// convert it to delta semantics.
type Water struct {
	store storage.Provider
}

func NewWater(store storage.Provider) *Water {
	return &Water{store: store}
}

func (r *Water) load() ([]models.WaterEntry, error) {
	records, err := r.store.LoadCollection(storage.NamespaceWater)
	if err != nil {
		return nil, err
	}
	return decode[models.WaterEntry](storage.NamespaceWater, records)
}

func (r *Water) save(entries []models.WaterEntry) error {
	records, err := encode(storage.NamespaceWater, entries)
	if err != nil {
		return err
	}
	return r.store.SaveCollection(storage.NamespaceWater, records)
}

// Append persists a new snapshot row carrying the given running total,
// stamped with the current local date and time.
func (r *Water) Append(glasses int, notes string) (models.WaterEntry, error) {
	entries, err := r.load()
	if err != nil {
		return models.WaterEntry{}, err
	}

	now := time.Now()
	entry := models.WaterEntry{
		ID:      uuid.New().String(),
		Date:    now.Format(constants.DateFormat),
		Time:    now.Format(constants.TimeFormat),
		Glasses: glasses,
		Notes:   notes,
	}

	entries = append(entries, entry)
	if err := r.save(entries); err != nil {
		return models.WaterEntry{}, err
	}
	return entry, nil
}

// AddGlass appends a snapshot with today's total incremented by one.
func (r *Water) AddGlass() (models.WaterEntry, error) {
	total, err := r.TodayTotal()
	if err != nil {
		return models.WaterEntry{}, err
	}
	return r.Append(total+1, "")
}

// RemoveGlass appends a snapshot with today's total decremented by one.
func (r *Water) RemoveGlass() (models.WaterEntry, error) {
	total, err := r.TodayTotal()
	if err != nil {
		return models.WaterEntry{}, err
	}
	if total == 0 {
		return models.WaterEntry{}, ErrNothingToRemove
	}
	return r.Append(total-1, "")
}

// TodayTotal reads the last-inserted snapshot for today. Collections are
// append-only on the write path, so stored order is insertion order.
func (r *Water) TodayTotal() (int, error) {
	entries, err := r.load()
	if err != nil {
		return 0, err
	}

	today := time.Now().Format(constants.DateFormat)
	total := 0
	for _, entry := range entries {
		if entry.Date == today {
			total = entry.Glasses
		}
	}
	return total, nil
}

// TotalForDay sums every snapshot recorded on a historical day. Calling
// this for today overcounts; use TodayTotal there instead.
func (r *Water) TotalForDay(date string) (int, error) {
	entries, err := r.load()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, entry := range entries {
		if entry.Date == date {
			total += entry.Glasses
		}
	}
	return total, nil
}

// Delete is idempotent; an unknown id leaves the collection unchanged.
func (r *Water) Delete(id string) error {
	entries, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]models.WaterEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	return r.save(kept)
}

// All returns every water entry, most recent first.
func (r *Water) All() ([]models.WaterEntry, error) {
	entries, err := r.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() > entries[j].SortKey()
	})
	return entries, nil
}

// ForDate returns the water entries recorded on a day, most recent first.
func (r *Water) ForDate(date string) ([]models.WaterEntry, error) {
	entries, err := r.All()
	if err != nil {
		return nil, err
	}

	matched := make([]models.WaterEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
