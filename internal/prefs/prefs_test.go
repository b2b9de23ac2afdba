package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsForUnknownUser(t *testing.T) {
	s := NewMemory()
	p := s.Get("nobody")
	assert.False(t, p.SaveOrders)
	assert.False(t, p.Notifications)
	assert.Equal(t, Never, p.Reminder)
}

func TestSetAndGet(t *testing.T) {
	s := NewMemory()
	s.Set("u1", Preferences{SaveOrders: true, Notifications: true, Reminder: Weekly})
	p := s.Get("u1")
	assert.True(t, p.SaveOrders)
	assert.Equal(t, Weekly, p.Reminder)
}

func TestSetNormalizesBadFrequency(t *testing.T) {
	s := NewMemory()
	s.Set("u1", Preferences{Reminder: Frequency("Hourly")})
	assert.Equal(t, Never, s.Get("u1").Reminder)
}

func TestAllSnapshots(t *testing.T) {
	s := NewMemory()
	s.Set("u1", Preferences{Notifications: true, Reminder: Daily})
	s.Set("u2", Preferences{SaveOrders: true})

	all := s.All()
	assert.Len(t, all, 2)
	assert.Equal(t, Daily, all["u1"].Reminder)

	// Snapshot, not a live view.
	all["u3"] = Preferences{}
	assert.Len(t, s.All(), 2)
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{Daily, Weekly, Biweekly, Monthly, Never} {
		assert.True(t, f.Valid(), string(f))
	}
	assert.False(t, Frequency("Sometimes").Valid())
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s.Get("anyone"))
}

func TestLoadFileEmptyPath(t *testing.T) {
	s, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s.Get("anyone"))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	s := NewMemory()
	s.Set("u1", Preferences{SaveOrders: true, Notifications: true, Reminder: Monthly})
	s.Set("u2", Preferences{Reminder: Never})
	require.NoError(t, s.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Get("u1"), loaded.Get("u1"))
	assert.Equal(t, s.Get("u2"), loaded.Get("u2"))
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}
