package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/zbiljic/gitexec"

	"github.com/zbiljic/vconfig-go"
)

// File names searched for, in order of preference.
const (
	FileName       = ".commitlintrc.json"
	PublicFileName = "commitlint.json"
)

var (
	// Cached configuration to avoid loading multiple times
	cachedConfig *Config
	// Mutex for thread-safe access to config file
	configMutex = &sync.Mutex{}
)

// Load loads configuration using the migration system
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadCreateMigrate()
	if err != nil {
		return nil, err
	}

	cachedConfig = config
	return config, nil
}

// LoadFile loads configuration from an explicit path, bypassing the search
// and the cache.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, errInvalidArgument
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	return loadMigrate(filename)
}

// Save saves configuration to a file
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	// ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	// update the cached config so subsequent loads see saved state
	cachedConfig = config

	return nil
}

// Create writes config to filename unless a file already exists there and
// force is false.
func Create(config *Config, filename string, force bool) error {
	if _, err := os.Stat(filename); err == nil && !force {
		return errConfigExists(filename)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return Save(config, filename)
}

// FindFile searches for configuration file in hierarchical order
func FindFile() (string, error) {
	searchPaths := GetSearchPaths()

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths returns the list of paths to search for configuration files
func GetSearchPaths() []string {
	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	} else if resolved, err := filepath.EvalSymlinks(cwd); err == nil {
		cwd = resolved
	}

	// 1. ./.commitlintrc.json and ./commitlint.json (current directory)
	paths = append(paths, filepath.Join(cwd, FileName), filepath.Join(cwd, PublicFileName))

	// 2. Walk up directories, stopping at the git top-level or below the
	// home directory
	dir := cwd
	homeDir := lo.Must(os.UserHomeDir())
	topLevel := gitTopLevel(cwd)
	for {
		parent := filepath.Dir(dir)
		if dir == topLevel || dir == homeDir || parent == dir || parent == homeDir {
			break // reached repository, root or home directory
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, FileName), filepath.Join(dir, PublicFileName))
	}

	// 3. ~/.config/commitlint/commitlint.json (user config)
	paths = append(paths, GetDefaultPath())

	// 4. ~/.commitlintrc.json (user home fallback)
	paths = append(paths, filepath.Join(homeDir, FileName))

	return paths
}

// gitTopLevel returns the top-level directory of the repository containing
// dir, or an empty string outside of a repository.
func gitTopLevel(dir string) string {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       dir,
		ShowToplevel: true,
	})
	if err != nil {
		return ""
	}

	top := strings.TrimSpace(string(out))
	if resolved, err := filepath.EvalSymlinks(top); err == nil {
		top = resolved
	}
	return filepath.Clean(top)
}

// GetPath returns the path where configuration would be loaded from
func GetPath() (string, bool) {
	path, err := FindFile()
	return path, err == nil
}

// GetDefaultPath returns the default path for user configuration
func GetDefaultPath() string {
	homeDir := lo.Must(os.UserHomeDir())

	configDir := filepath.Join(homeDir, ".config", "commitlint")
	return filepath.Join(configDir, PublicFileName)
}

// ResetCache clears the cached configuration (useful for testing)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
