package repo

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/BinadaPasandul/pulse/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "pulse.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

// seed writes typed records straight into a namespace, bypassing the
// repository write path so tests can plant historical dates.
func seed[T any](t *testing.T, store storage.Provider, ns storage.Namespace, items []T) {
	t.Helper()
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			t.Fatalf("marshal seed record: %v", err)
		}
		records = append(records, raw)
	}
	if err := store.SaveCollection(ns, records); err != nil {
		t.Fatalf("seed %s: %v", ns, err)
	}
}
