package storage

import (
	"encoding/json"
	"errors"

	"github.com/BinadaPasandul/pulse/internal/models"
)

// Namespace identifies one of the independent record collections the store
// persists. Each namespace is a single blob replaced wholesale on write;
// there are no partial updates.
type Namespace string

const (
	NamespaceHabits Namespace = "habits"
	NamespaceMoods  Namespace = "mood_entries"
	NamespaceWater  Namespace = "water_entries"
)

// Namespaces lists every record namespace in export order.
var Namespaces = []Namespace{NamespaceHabits, NamespaceMoods, NamespaceWater}

var (
	// ErrNotInitialized is returned when the store is used before Load.
	ErrNotInitialized = errors.New("storage not initialized, run 'pulse init' first")

	// ErrCorrupt is returned when a stored blob fails to parse as the
	// expected shape. Callers must decide whether to reset; the store
	// never silently treats a corrupt namespace as empty.
	ErrCorrupt = errors.New("stored data is corrupt")

	// ErrUnknownNamespace is returned for a namespace the store does not manage.
	ErrUnknownNamespace = errors.New("unknown namespace")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections. LoadCollection returns an empty slice for a namespace
	// that was never written. SaveCollection replaces the stored
	// collection atomically; a crash mid-save must never leave a
	// partially written collection behind. Both are safe under one
	// foreground writer plus concurrent background readers.
	LoadCollection(ns Namespace) ([]json.RawMessage, error)
	SaveCollection(ns Namespace, records []json.RawMessage) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Export assembles a read-only snapshot of all namespaces.
	Export() (models.Export, error)

	// Utils
	GetConfigPath() string
}
