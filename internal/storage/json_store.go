package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
)

// document is the on-disk layout: every namespace is an independent array
// of flat records, settings a bag of scalar keys.
type document struct {
	Version      int               `json:"version"`
	Habits       []json.RawMessage `json:"habits"`
	MoodEntries  []json.RawMessage `json:"mood_entries"`
	WaterEntries []json.RawMessage `json:"water_entries"`
	Settings     map[string]string `json:"settings"`
}

func (d *document) collection(ns Namespace) (*[]json.RawMessage, error) {
	switch ns {
	case NamespaceHabits:
		return &d.Habits, nil
	case NamespaceMoods:
		return &d.MoodEntries, nil
	case NamespaceWater:
		return &d.WaterEntries, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownNamespace, ns)
	}
}

// JSONStore persists the whole document to a single file with
// read-modify-write semantics. A mutex guards the document so the
// background reminder reader never observes a half-written collection.
type JSONStore struct {
	path string

	mu  sync.RWMutex
	doc *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:  1,
		Settings: models.SettingsToMap(models.DefaultSettings()),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		// Surface corruption distinctly so the caller can choose to
		// reset, rather than silently losing data to an empty store.
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if doc.Settings == nil {
		doc.Settings = make(map[string]string)
	}

	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the document to a temp file and renames it over the live
// path, so a crash mid-write cannot leave a torn file behind. Callers
// must hold the write lock.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) LoadCollection(ns Namespace) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return nil, ErrNotInitialized
	}

	coll, err := s.doc.collection(ns)
	if err != nil {
		return nil, err
	}

	records := make([]json.RawMessage, len(*coll))
	copy(records, *coll)
	return records, nil
}

func (s *JSONStore) SaveCollection(ns Namespace, records []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNotInitialized
	}

	coll, err := s.doc.collection(ns)
	if err != nil {
		return err
	}

	replacement := make([]json.RawMessage, len(records))
	copy(replacement, records)
	*coll = replacement
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return models.Settings{}, ErrNotInitialized
	}

	// Overlay stored keys on the defaults so a key that was never
	// written falls back without clobbering explicit false/zero values.
	merged := models.SettingsToMap(models.DefaultSettings())
	for key, value := range s.doc.Settings {
		merged[key] = value
	}

	settings, err := models.MapToSettings(merged)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNotInitialized
	}

	s.doc.Settings = models.SettingsToMap(settings)
	return s.save()
}

func (s *JSONStore) Export() (models.Export, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return models.Export{}, ErrNotInitialized
	}

	export := models.Export{
		Habits:       []models.HabitEntry{},
		MoodEntries:  []models.MoodEntry{},
		WaterEntries: []models.WaterEntry{},
		ExportDate:   time.Now().Format(constants.DateFormat),
	}

	for _, raw := range s.doc.Habits {
		var habit models.HabitEntry
		if err := json.Unmarshal(raw, &habit); err != nil {
			return models.Export{}, fmt.Errorf("%w: habit record: %v", ErrCorrupt, err)
		}
		export.Habits = append(export.Habits, habit)
	}
	for _, raw := range s.doc.MoodEntries {
		var mood models.MoodEntry
		if err := json.Unmarshal(raw, &mood); err != nil {
			return models.Export{}, fmt.Errorf("%w: mood record: %v", ErrCorrupt, err)
		}
		export.MoodEntries = append(export.MoodEntries, mood)
	}
	for _, raw := range s.doc.WaterEntries {
		var water models.WaterEntry
		if err := json.Unmarshal(raw, &water); err != nil {
			return models.Export{}, fmt.Errorf("%w: water record: %v", ErrCorrupt, err)
		}
		export.WaterEntries = append(export.WaterEntries, water)
	}

	merged := models.SettingsToMap(models.DefaultSettings())
	for key, value := range s.doc.Settings {
		merged[key] = value
	}
	settings, err := models.MapToSettings(merged)
	if err != nil {
		return models.Export{}, fmt.Errorf("%w: settings: %v", ErrCorrupt, err)
	}
	export.Settings = settings

	return export, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
