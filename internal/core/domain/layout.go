package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// CacheDirName is the name of the cache namespace directory under the system temp dir.
	CacheDirName = "wsg"

	// CacheFileExt is the extension of a cache entry file.
	CacheFileExt = ".yaml"

	// ConfigFileName is the name of the optional recognizer configuration file.
	ConfigFileName = "wsg.yaml"

	// ConfigDirName is the name of the directory under the user config dir holding ConfigFileName.
	ConfigDirName = "wsg"

	// DefaultCacheTTL is how long a scan result stays fresh.
	DefaultCacheTTL = 5 * time.Minute

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the default cache namespace directory.
func DefaultCachePath() string {
	return filepath.Join(os.TempDir(), CacheDirName)
}

// UserConfigPath returns the per-user recognizer configuration path.
// It returns an empty string when the user config dir cannot be determined.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}
