package domain

import "go.trai.ch/zerr"

var (
	// ErrLocationNotFound is returned when the geocoder yields no results for a query.
	ErrLocationNotFound = zerr.New("location not found")

	// ErrGeocodeRequestFailed is returned when the geocoding API request fails.
	ErrGeocodeRequestFailed = zerr.New("failed to make geocoding request")

	// ErrGeocodeParseFailed is returned when the geocoding API response cannot be parsed.
	ErrGeocodeParseFailed = zerr.New("failed to parse geocoding response")

	// ErrForecastRequestFailed is returned when the forecast API request fails.
	ErrForecastRequestFailed = zerr.New("failed to make forecast request")

	// ErrForecastParseFailed is returned when the forecast API response cannot be parsed.
	ErrForecastParseFailed = zerr.New("failed to parse forecast response")

	// ErrNoLocation is returned when no location is given and none can be prompted for.
	ErrNoLocation = zerr.New("no location given and standard input is not a terminal")

	// ErrConfigDirUnavailable is returned when the user config directory cannot be determined.
	ErrConfigDirUnavailable = zerr.New("failed to determine user config directory")

	// ErrCacheDirUnavailable is returned when the user cache directory cannot be determined.
	ErrCacheDirUnavailable = zerr.New("failed to determine user cache directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigMarshalFailed is returned when the config cannot be marshaled.
	ErrConfigMarshalFailed = zerr.New("failed to marshal config")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrConfigClearFailed is returned when removing the config directory fails.
	ErrConfigClearFailed = zerr.New("failed to clear config")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheUnmarshalFailed is returned when a cache entry cannot be unmarshaled.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrCacheMarshalFailed is returned when a cache entry cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheClearFailed is returned when removing the cache directory fails.
	ErrCacheClearFailed = zerr.New("failed to clear cache")

	// ErrEnvDirCreateFailed is returned when the development environment directory cannot be created.
	ErrEnvDirCreateFailed = zerr.New("failed to create environment directory")

	// ErrManifestReadFailed is returned when the development requirements manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read requirements manifest")

	// ErrToolInstallFailed is returned when installing a development tool fails.
	ErrToolInstallFailed = zerr.New("failed to install tool")

	// ErrDistCleanFailed is returned when the dist directory cannot be removed.
	ErrDistCleanFailed = zerr.New("failed to remove dist directory")

	// ErrDistCreateFailed is returned when the dist directory cannot be created.
	ErrDistCreateFailed = zerr.New("failed to create dist directory")

	// ErrPackageBuildFailed is returned when building the distributable binary fails.
	ErrPackageBuildFailed = zerr.New("failed to build package")
)
