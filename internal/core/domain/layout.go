package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// AppDirName is the directory name used under the user config and cache roots.
	AppDirName = "wthr"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// LocationCacheDirName is the subdirectory holding geocoded location entries.
	LocationCacheDirName = "locations"

	// EnvDirName is the development environment directory created by the dev tool.
	EnvDirName = ".tools"

	// ManifestFileName is the development requirements manifest the dev tool installs from.
	ManifestFileName = "requirements-dev.txt"

	// DistDirName is the build output directory for the packaged binary.
	DistDirName = "dist"

	// ArtifactName is the name of the packaged binary inside the dist directory.
	ArtifactName = "wthr"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigDir returns the per-user configuration directory for the application.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, ErrConfigDirUnavailable.Error())
	}
	return filepath.Join(base, AppDirName), nil
}

// CacheDir returns the per-user cache directory for the application.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, ErrCacheDirUnavailable.Error())
	}
	return filepath.Join(base, AppDirName), nil
}

// DistPath returns the fixed output path of the packaged binary.
func DistPath() string {
	return filepath.Join(DistDirName, ArtifactName)
}
