package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// LocationCache implements ports.LocationCache using one JSON file per
// geocoded query, named by the hash of the normalized query.
type LocationCache struct {
	dir string
}

// NewLocationCache creates a LocationCache rooted at the user cache directory.
func NewLocationCache() (*LocationCache, error) {
	dir, err := domain.CacheDir()
	if err != nil {
		return nil, err
	}
	return newLocationCacheWithDir(filepath.Join(dir, domain.LocationCacheDirName)), nil
}

// newLocationCacheWithDir creates a LocationCache rooted at a custom directory (used for testing).
func newLocationCacheWithDir(dir string) *LocationCache {
	return &LocationCache{dir: dir}
}

// Get returns the cached location for a query, or nil on a miss.
func (c *LocationCache) Get(query string) (*domain.Location, error) {
	data, err := os.ReadFile(c.path(query))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var loc domain.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}

	return &loc, nil
}

// Put stores a geocoded location under the given query.
func (c *LocationCache) Put(query string, loc domain.Location) error {
	loc.Latitude = domain.RoundCoordinate(loc.Latitude)
	loc.Longitude = domain.RoundCoordinate(loc.Longitude)

	data, err := json.MarshalIndent(loc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := atomicWriteFile(c.path(query), data); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

// Clear removes all cached locations.
func (c *LocationCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
	}
	return nil
}

// path maps a query to its cache file. Queries are case-insensitive, so the
// key is the hash of the lowercased, trimmed query.
func (c *LocationCache) path(query string) string {
	key := xxhash.Sum64String(strings.ToLower(strings.TrimSpace(query)))
	return filepath.Join(c.dir, strconv.FormatUint(key, 16)+".json")
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "wthr-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
