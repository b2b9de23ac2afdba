package prefs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile seeds a Memory store from a YAML file mapping user id to
// preferences:
//
//	u-123:
//	  save_orders: true
//	  notifications: true
//	  reminder: Weekly
//
// A missing file is not an error; the service starts with defaults.
func LoadFile(path string) (*Memory, error) {
	s := NewMemory()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs file: %w", err)
	}
	var m map[string]Preferences
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse prefs file %s: %w", path, err)
	}
	for uid, p := range m {
		s.Set(uid, p)
	}
	return s, nil
}

// SaveFile writes the store's contents back out as YAML.
func (s *Memory) SaveFile(path string) error {
	s.mu.RLock()
	b, err := yaml.Marshal(s.m)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
