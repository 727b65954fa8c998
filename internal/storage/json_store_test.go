package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "pulse.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func rawRecords(t *testing.T, items ...any) []json.RawMessage {
	t.Helper()
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			t.Fatalf("marshal record: %v", err)
		}
		records = append(records, raw)
	}
	return records
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() should fail on existing storage")
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestJSONStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load() error = %v, want ErrCorrupt", err)
	}
}

func TestJSONStoreEmptyCollection(t *testing.T) {
	store := newTestJSONStore(t)

	records, err := store.LoadCollection(NamespaceHabits)
	if err != nil {
		t.Fatalf("LoadCollection() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection, got %d records", len(records))
	}
}

func TestJSONStoreUnknownNamespace(t *testing.T) {
	store := newTestJSONStore(t)

	if _, err := store.LoadCollection("bogus"); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("LoadCollection(bogus) error = %v, want ErrUnknownNamespace", err)
	}
	if err := store.SaveCollection("bogus", nil); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("SaveCollection(bogus) error = %v, want ErrUnknownNamespace", err)
	}
}

func TestJSONStoreCollectionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	habit := models.HabitEntry{
		ID:        "h-1",
		Text:      "stretch",
		CreatedAt: "2026-08-29",
	}
	if err := store.SaveCollection(NamespaceHabits, rawRecords(t, habit)); err != nil {
		t.Fatalf("SaveCollection() error = %v", err)
	}

	// Reopen from disk to prove durability, not just the in-memory copy.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	records, err := reopened.LoadCollection(NamespaceHabits)
	if err != nil {
		t.Fatalf("LoadCollection() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	var got models.HabitEntry
	if err := json.Unmarshal(records[0], &got); err != nil {
		t.Fatal(err)
	}
	if got != habit {
		t.Errorf("round trip = %+v, want %+v", got, habit)
	}
}

func TestJSONStoreSaveLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCollection(NamespaceWater, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("storage file missing after save: %v", err)
	}
}

func TestJSONStoreSettingsDefaults(t *testing.T) {
	store := newTestJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}

	if settings.DailyWaterGoal != constants.DefaultDailyWaterGoal {
		t.Errorf("DailyWaterGoal = %d, want %d", settings.DailyWaterGoal, constants.DefaultDailyWaterGoal)
	}
	if settings.ReminderIntervalMinutes != constants.DefaultReminderIntervalMinutes {
		t.Errorf("ReminderIntervalMinutes = %d, want %d", settings.ReminderIntervalMinutes, constants.DefaultReminderIntervalMinutes)
	}
	if settings.RemindersEnabled {
		t.Error("RemindersEnabled should default to false")
	}
	if !settings.NotificationsEnabled {
		t.Error("NotificationsEnabled should default to true")
	}
	if settings.AppTheme != constants.DefaultAppTheme {
		t.Errorf("AppTheme = %q, want %q", settings.AppTheme, constants.DefaultAppTheme)
	}
	if settings.FirstLaunchCompleted {
		t.Error("FirstLaunchCompleted should default to false")
	}
}

func TestJSONStoreSettingsExplicitFalseSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.NotificationsEnabled = false
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.NotificationsEnabled {
		t.Error("explicit false was clobbered by the default")
	}
}

func TestJSONStoreExport(t *testing.T) {
	store := newTestJSONStore(t)

	habit := models.HabitEntry{ID: "h-1", Text: "walk", CreatedAt: "2026-08-28"}
	mood := models.MoodEntry{ID: "m-1", Emoji: "😊", Mood: "Happy", Date: "2026-08-28", Time: "09:00"}
	water := models.WaterEntry{ID: "w-1", Date: "2026-08-28", Time: "10:00", Glasses: 3}

	if err := store.SaveCollection(NamespaceHabits, rawRecords(t, habit)); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCollection(NamespaceMoods, rawRecords(t, mood)); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCollection(NamespaceWater, rawRecords(t, water)); err != nil {
		t.Fatal(err)
	}

	export, err := store.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if len(export.Habits) != 1 || export.Habits[0] != habit {
		t.Errorf("export habits = %+v", export.Habits)
	}
	if len(export.MoodEntries) != 1 || export.MoodEntries[0] != mood {
		t.Errorf("export moods = %+v", export.MoodEntries)
	}
	if len(export.WaterEntries) != 1 || export.WaterEntries[0] != water {
		t.Errorf("export water = %+v", export.WaterEntries)
	}
	if export.ExportDate == "" {
		t.Error("export date missing")
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "pulse.json"))

	if _, err := store.LoadCollection(NamespaceHabits); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("LoadCollection() error = %v, want ErrNotInitialized", err)
	}
	if err := store.SaveCollection(NamespaceHabits, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SaveCollection() error = %v, want ErrNotInitialized", err)
	}
	if _, err := store.GetSettings(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetSettings() error = %v, want ErrNotInitialized", err)
	}
}
