package reminder

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/storage"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "pulse.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func configure(t *testing.T, store storage.Provider, enabled bool, goal int) {
	t.Helper()
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.RemindersEnabled = enabled
	settings.NotificationsEnabled = true
	settings.DailyWaterGoal = goal
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
}

func recordGlasses(t *testing.T, store storage.Provider, total int) {
	t.Helper()
	entry := models.WaterEntry{
		ID:      "w-1",
		Date:    utils.Today(),
		Time:    "12:00",
		Glasses: total,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCollection(storage.NamespaceWater, []json.RawMessage{data}); err != nil {
		t.Fatal(err)
	}
}

func TestComposeDisabled(t *testing.T) {
	store := newTestStore(t)
	configure(t, store, false, 8)
	recordGlasses(t, store, 2)

	_, fire, err := New(store, nil).Compose()
	if err != nil {
		t.Fatal(err)
	}
	if fire {
		t.Error("Compose() fired with reminders disabled")
	}
}

func TestComposeGoalMet(t *testing.T) {
	store := newTestStore(t)
	configure(t, store, true, 8)
	recordGlasses(t, store, 8)

	_, fire, err := New(store, nil).Compose()
	if err != nil {
		t.Fatal(err)
	}
	if fire {
		t.Error("Compose() fired after the goal was met")
	}
}

func TestComposeBelowGoal(t *testing.T) {
	store := newTestStore(t)
	configure(t, store, true, 8)
	recordGlasses(t, store, 3)

	body, fire, err := New(store, nil).Compose()
	if err != nil {
		t.Fatal(err)
	}
	if !fire {
		t.Fatal("Compose() did not fire below the goal")
	}
	if !strings.Contains(body, "3 of 8") {
		t.Errorf("body = %q, want current progress in it", body)
	}
}

func TestComposeNotificationsOff(t *testing.T) {
	store := newTestStore(t)
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.RemindersEnabled = true
	settings.NotificationsEnabled = false
	settings.DailyWaterGoal = 8
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	recordGlasses(t, store, 2)

	_, fire, err := New(store, nil).Compose()
	if err != nil {
		t.Fatal(err)
	}
	if fire {
		t.Error("Compose() fired with system notifications off")
	}
}
