package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
)

const schemaVersion = 1

// SQLiteStore keeps each namespace as ordered JSON records in a single
// table. SaveCollection replaces a namespace inside one transaction, which
// is the atomic-replace primitive here; SQLite also handles the
// single-writer/multi-reader access the reminder actor needs.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// NewMemoryStore creates an in-memory store for testing.
func NewMemoryStore() (*SQLiteStore, error) {
	s := NewSQLiteStore(":memory:")
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Init() error {
	if s.path != ":memory:" {
		dir := filepath.Dir(s.path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.migrate(); err != nil {
		s.db.Close()
		s.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed defaults so a fresh database behaves like a fresh install.
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect settings: %w", err)
	}
	if count == 0 {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if s.path != ":memory:" {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return ErrNotInitialized
		}
	}

	if err := s.open(); err != nil {
		return err
	}

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("%w: reading schema version: %v", ErrCorrupt, err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: schema version %d, expected %d", ErrCorrupt, version, schemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS records (
		namespace TEXT    NOT NULL,
		position  INTEGER NOT NULL,
		data      TEXT    NOT NULL,
		PRIMARY KEY (namespace, position)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *SQLiteStore) LoadCollection(ns Namespace) ([]json.RawMessage, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	if _, err := namespaceKey(ns); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT data FROM records WHERE namespace = ? ORDER BY position`, string(ns))
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", ns, err)
	}
	defer rows.Close()

	records := []json.RawMessage{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("load collection %s: %w", ns, err)
		}
		if !json.Valid([]byte(data)) {
			return nil, fmt.Errorf("%w: %s record is not valid JSON", ErrCorrupt, ns)
		}
		records = append(records, json.RawMessage(data))
	}
	return records, rows.Err()
}

func (s *SQLiteStore) SaveCollection(ns Namespace, records []json.RawMessage) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	if _, err := namespaceKey(ns); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save collection %s: %w", ns, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE namespace = ?`, string(ns)); err != nil {
		return fmt.Errorf("save collection %s: %w", ns, err)
	}
	for i, record := range records {
		_, err := tx.Exec(
			`INSERT INTO records (namespace, position, data) VALUES (?, ?, ?)`,
			string(ns), i, string(record))
		if err != nil {
			return fmt.Errorf("save collection %s: %w", ns, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, ErrNotInitialized
	}

	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	merged := models.SettingsToMap(models.DefaultSettings())
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, fmt.Errorf("get settings: %w", err)
		}
		merged[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	settings, err := models.MapToSettings(merged)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	defer tx.Rollback()

	for key, value := range models.SettingsToMap(settings) {
		_, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Export() (models.Export, error) {
	if s.db == nil {
		return models.Export{}, ErrNotInitialized
	}

	export := models.Export{
		Habits:       []models.HabitEntry{},
		MoodEntries:  []models.MoodEntry{},
		WaterEntries: []models.WaterEntry{},
		ExportDate:   time.Now().Format(constants.DateFormat),
	}

	habits, err := s.LoadCollection(NamespaceHabits)
	if err != nil {
		return models.Export{}, err
	}
	for _, raw := range habits {
		var habit models.HabitEntry
		if err := json.Unmarshal(raw, &habit); err != nil {
			return models.Export{}, fmt.Errorf("%w: habit record: %v", ErrCorrupt, err)
		}
		export.Habits = append(export.Habits, habit)
	}

	moods, err := s.LoadCollection(NamespaceMoods)
	if err != nil {
		return models.Export{}, err
	}
	for _, raw := range moods {
		var mood models.MoodEntry
		if err := json.Unmarshal(raw, &mood); err != nil {
			return models.Export{}, fmt.Errorf("%w: mood record: %v", ErrCorrupt, err)
		}
		export.MoodEntries = append(export.MoodEntries, mood)
	}

	water, err := s.LoadCollection(NamespaceWater)
	if err != nil {
		return models.Export{}, err
	}
	for _, raw := range water {
		var entry models.WaterEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return models.Export{}, fmt.Errorf("%w: water record: %v", ErrCorrupt, err)
		}
		export.WaterEntries = append(export.WaterEntries, entry)
	}

	settings, err := s.GetSettings()
	if err != nil {
		return models.Export{}, err
	}
	export.Settings = settings

	return export, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func namespaceKey(ns Namespace) (string, error) {
	switch ns {
	case NamespaceHabits, NamespaceMoods, NamespaceWater:
		return string(ns), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownNamespace, ns)
	}
}
