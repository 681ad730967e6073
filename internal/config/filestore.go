package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/kleyver/kleyver-app/internal/platform"
)

const (
	appDirName          = "kleyver-app"
	preferencesFileName = "preferences.yaml"
)

// FileStore is a PreferenceStore persisted as a flat YAML map. It is used
// where no Fyne app exists (the CLI, tests). Writes are best effort: a failed
// save is logged and the in-memory value stays authoritative.
type FileStore struct {
	path   string
	logger zerolog.Logger

	mu     sync.RWMutex
	values map[string]string
}

// DefaultPreferencesPath returns the preferences file under the user config dir
func DefaultPreferencesPath() (string, error) {
	dir, err := platform.ConfigDir(appDirName)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, preferencesFileName), nil
}

// OpenFileStore loads the store at path. A missing or unreadable file yields
// an empty store.
func OpenFileStore(path string, logger zerolog.Logger) *FileStore {
	fsStore := &FileStore{
		path:   path,
		logger: logger,
		values: make(map[string]string),
	}
	if err := fsStore.load(); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("preferences not loaded, using defaults")
	}
	return fsStore
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

// StringWithFallback returns the value for key or fallback when unset
func (f *FileStore) StringWithFallback(key, fallback string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if v, ok := f.values[key]; ok {
		return v
	}
	return fallback
}

// SetString stores value under key and persists the whole map
func (f *FileStore) SetString(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	if err := f.save(); err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Str("key", key).Msg("failed to persist preference")
	}
}

// IntWithFallback returns the integer stored under key, or fallback when the
// key is unset or does not hold a number
func (f *FileStore) IntWithFallback(key string, fallback int) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

// SetInt stores value under key and persists the whole map
func (f *FileStore) SetInt(key string, value int) {
	f.SetString(key, strconv.Itoa(value))
}

func (f *FileStore) load() error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode preferences: %w", err)
	}
	f.values = values
	return nil
}

// save must be called with f.mu held
func (f *FileStore) save() error {
	data, err := yaml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(f.path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending preferences file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			f.logger.Debug().Err(err).Msg("cleanup pending preferences file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace preferences: %w", err)
	}
	return nil
}
