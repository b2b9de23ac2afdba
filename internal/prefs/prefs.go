// Package prefs holds per-user local preferences. Aggregation and
// notification behavior take a Preferences value explicitly instead of
// reading a global settings store, so those paths stay deterministic.
package prefs

import "sync"

// Frequency is the reminder cadence choice.
type Frequency string

const (
	Daily    Frequency = "Daily"
	Weekly   Frequency = "Weekly"
	Biweekly Frequency = "Biweekly"
	Monthly  Frequency = "Monthly"
	Never    Frequency = "Never"
)

// Valid reports whether f is one of the known cadences.
func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Biweekly, Monthly, Never:
		return true
	}
	return false
}

// Preferences are one user's settings.
type Preferences struct {
	// SaveOrders gates order-history retention. When off, history reads
	// return nothing and only the most recent completed delivery date is
	// surfaced as a summary.
	SaveOrders bool `yaml:"save_orders" json:"save_orders"`
	// Notifications is the master toggle for delivery pushes.
	Notifications bool `yaml:"notifications" json:"notifications"`
	// Reminder is the order-reminder cadence.
	Reminder Frequency `yaml:"reminder" json:"reminder"`
}

// Defaults mirrors a fresh install: nothing saved, nothing pushed.
func Defaults() Preferences {
	return Preferences{SaveOrders: false, Notifications: false, Reminder: Never}
}

// Store reads and writes preferences keyed by user id.
type Store interface {
	Get(uid string) Preferences
	Set(uid string, p Preferences)
}

// Memory is the in-process preference store.
type Memory struct {
	mu sync.RWMutex
	m  map[string]Preferences
}

// NewMemory returns an empty preference store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]Preferences)}
}

// Get returns the user's preferences, defaults if never set.
func (s *Memory) Get(uid string) Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.m[uid]; ok {
		return p
	}
	return Defaults()
}

// Set stores the user's preferences.
func (s *Memory) Set(uid string, p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.Reminder.Valid() {
		p.Reminder = Never
	}
	s.m[uid] = p
}

// All returns a snapshot of every stored preference set keyed by uid.
func (s *Memory) All() map[string]Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Preferences, len(s.m))
	for uid, p := range s.m {
		out[uid] = p
	}
	return out
}
