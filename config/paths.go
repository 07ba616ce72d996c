package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	// ErrNoHome indicates that the user's home directory could not be determined
	ErrNoHome = errors.New("unable to determine home directory")

	// ErrPathsNotInitialized indicates InitPaths was not called before a path lookup
	ErrPathsNotInitialized = errors.New("paths not initialized")
)

// pathManager manages all file system paths for trialscope
type pathManager struct {
	configDir string // User config directory
	cacheDir  string // User cache directory
}

var (
	pathsOnce sync.Once
	paths     *pathManager
	pathsErr  error
)

// InitPaths resolves the user config and cache directories. It must be
// called once at startup before any other path accessor.
func InitPaths() error {
	pathsOnce.Do(func() {
		configDir, err := userConfigDir()
		if err != nil {
			pathsErr = fmt.Errorf("get config directory: %w", err)
			return
		}

		cacheDir, err := userCacheDir()
		if err != nil {
			pathsErr = fmt.Errorf("get cache directory: %w", err)
			return
		}

		paths = &pathManager{configDir: configDir, cacheDir: cacheDir}
	})
	return pathsErr
}

// userConfigDir returns the platform-appropriate user config directory
func userConfigDir() (string, error) {
	// Check XDG_CONFIG_HOME first (works on all platforms)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "trialscope"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoHome
	}

	switch runtime.GOOS {
	case "darwin":
		// macOS: prefer ~/.config/trialscope if it already exists, else the
		// platform-native Application Support location
		dotConfig := filepath.Join(homeDir, ".config", "trialscope")
		if _, err := os.Stat(dotConfig); err == nil {
			return dotConfig, nil
		}
		return filepath.Join(homeDir, "Library", "Application Support", "trialscope"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "trialscope"), nil
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "trialscope"), nil
	default:
		return filepath.Join(homeDir, ".config", "trialscope"), nil
	}
}

// userCacheDir returns the platform-appropriate user cache directory
func userCacheDir() (string, error) {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "trialscope"), nil
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", ErrNoHome
	}
	return filepath.Join(cacheDir, "trialscope"), nil
}

func requirePaths() *pathManager {
	if paths == nil {
		// Path accessors are only reachable after bootstrap, which fails
		// fast when InitPaths errors; reaching this is a programmer error.
		panic(ErrPathsNotInitialized)
	}
	return paths
}

// GetConfigDir returns the user configuration directory.
func GetConfigDir() string {
	return requirePaths().configDir
}

// GetConfigFile returns the path of the user config.yaml.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetCacheDir returns the user cache directory.
func GetCacheDir() string {
	return requirePaths().cacheDir
}

// GetLogFile returns the path of the application log file.
func GetLogFile() string {
	return filepath.Join(GetCacheDir(), "trialscope.log")
}

// GetUserCatalogFile returns the path of the user term catalog overlay.
func GetUserCatalogFile() string {
	return filepath.Join(GetConfigDir(), "catalog.yaml")
}

// EnsureDirs creates the config and cache directories if missing.
func EnsureDirs() error {
	for _, dir := range []string{GetConfigDir(), GetCacheDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
