// Package persistence stores user settings between runs with gdata.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	appName     = "onionrun"
)

// Settings is the data stored on disk.
type Settings struct {
	Muted      bool   `json:"muted"`
	Fullscreen bool   `json:"fullscreen"`
	LastLevel  string `json:"lastLevel"`
}

// Store is the subset of *gdata.Manager used here.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

type Manager struct {
	store Store
}

// Open opens the per-user gdata store.
func Open() (*Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return New(m), nil
}

func New(store Store) *Manager {
	return &Manager{store: store}
}

// Load returns the saved settings, or nil when nothing was saved yet. A
// nil Manager loads nothing.
func (m *Manager) Load() (*Settings, error) {
	if m == nil {
		return nil, nil
	}
	data, err := m.store.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// Save writes s. A nil Manager drops the write.
func (m *Manager) Save(s *Settings) error {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := m.store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadOrDefaults returns the saved settings, falling back to Defaults when
// nothing was saved or the store cannot be read. Read failures are logged.
func (m *Manager) LoadOrDefaults() *Settings {
	s, err := m.Load()
	if err != nil {
		log.Warn("could not read settings", "err", err)
	}
	if s == nil {
		return Defaults()
	}
	return s
}

// Defaults returns the settings used before anything is saved: sound on,
// windowed, no level played yet.
func Defaults() *Settings {
	return &Settings{}
}
