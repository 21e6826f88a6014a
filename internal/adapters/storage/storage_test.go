package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

func TestConfigStore_RoundTrip(t *testing.T) {
	s := newConfigStoreWithDir(filepath.Join(t.TempDir(), "wthr"))

	// Empty store reads as unset, not as an error.
	location, err := s.DefaultLocation()
	require.NoError(t, err)
	assert.Empty(t, location)

	require.NoError(t, s.SetDefaultLocation("Берн"))

	location, err = s.DefaultLocation()
	require.NoError(t, err)
	assert.Equal(t, "Берн", location)

	require.NoError(t, s.SetDefaultLocation("Цюрих"))

	location, err = s.DefaultLocation()
	require.NoError(t, err)
	assert.Equal(t, "Цюрих", location)
}

func TestConfigStore_Clear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wthr")
	s := newConfigStoreWithDir(dir)

	require.NoError(t, s.SetDefaultLocation("Берн"))
	require.NoError(t, s.Clear())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already empty store is fine.
	require.NoError(t, s.Clear())
}

func TestConfigStore_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("{notyaml"), 0o644))

	s := newConfigStoreWithDir(dir)
	_, err := s.DefaultLocation()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLocationCache_RoundTrip(t *testing.T) {
	c := newLocationCacheWithDir(filepath.Join(t.TempDir(), "locations"))

	// A miss is not an error.
	loc, err := c.Get("берн")
	require.NoError(t, err)
	assert.Nil(t, loc)

	stored := domain.Location{DisplayName: "Берн, Швейцария", Latitude: 46.94809, Longitude: 7.44744}
	require.NoError(t, c.Put("берн", stored))

	loc, err = c.Get("берн")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Берн, Швейцария", loc.DisplayName)
	// Coordinates are rounded before storage.
	assert.InDelta(t, 46.95, loc.Latitude, 0.0001)
	assert.InDelta(t, 7.45, loc.Longitude, 0.0001)
}

func TestLocationCache_KeyNormalization(t *testing.T) {
	c := newLocationCacheWithDir(filepath.Join(t.TempDir(), "locations"))

	stored := domain.Location{DisplayName: "Берн, Швейцария", Latitude: 46.95, Longitude: 7.45}
	require.NoError(t, c.Put("Берн", stored))

	for _, query := range []string{"берн", "БЕРН", "  Берн  "} {
		loc, err := c.Get(query)
		require.NoError(t, err)
		require.NotNil(t, loc, "query %q", query)
		assert.Equal(t, stored.DisplayName, loc.DisplayName)
	}
}

func TestLocationCache_Clear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "locations")
	c := newLocationCacheWithDir(dir)

	require.NoError(t, c.Put("берн", domain.Location{DisplayName: "Берн"}))
	require.NoError(t, c.Clear())

	loc, err := c.Get("берн")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, atomicWriteFile(path, []byte("first")))
	require.NoError(t, atomicWriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}
