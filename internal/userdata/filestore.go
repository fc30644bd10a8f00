package userdata

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
)

// Stored file per state key, mirroring the persisted JSON shapes.
const (
	preferencesFile  = "preferences.json"
	favoritesFile    = "favorites.json"
	contentOrderFile = "content_order.json"
)

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithFileStoreLogger sets the logger for write failures.
func WithFileStoreLogger(logger *log.Logger) FileStoreOption {
	return func(f *FileStore) {
		f.logger = logger
	}
}

// FileStore persists user state as JSON files in a directory. It is the
// durable side of the save hook: writes are best-effort, and a failed write
// is logged rather than surfaced since the in-memory state stays correct.
type FileStore struct {
	dir    string
	logger *log.Logger
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string, opts ...FileStoreOption) *FileStore {
	f := &FileStore{dir: dir, logger: log.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load reads the persisted state. Missing or malformed files are non-fatal:
// each key independently falls back to its default.
func (f *FileStore) Load() Snapshot {
	snap := Snapshot{Preferences: DefaultPreferences()}

	var prefs Preferences
	if f.read(preferencesFile, &prefs) {
		snap.Preferences = prefs
	}

	var favorites []string
	if f.read(favoritesFile, &favorites) {
		snap.Favorites = favorites
	}

	var order []string
	if f.read(contentOrderFile, &order) {
		snap.ContentOrder = order
	}

	return snap
}

// Save writes the changed key through to disk. Satisfies SaveHook.
func (f *FileStore) Save(change Change, snap Snapshot) {
	switch change {
	case ChangePreferences:
		f.write(preferencesFile, snap.Preferences)
	case ChangeFavorites:
		f.write(favoritesFile, snap.Favorites)
	case ChangeContentOrder:
		f.write(contentOrderFile, snap.ContentOrder)
	}
}

func (f *FileStore) read(name string, v any) bool {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		f.logger.Warn("ignoring malformed user data file", "file", name, "err", err)
		return false
	}
	return true
}

func (f *FileStore) write(name string, v any) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		f.logger.Warn("failed to create user data directory", "dir", f.dir, "err", err)
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		f.logger.Warn("failed to encode user data", "file", name, "err", err)
		return
	}
	if err := os.WriteFile(filepath.Join(f.dir, name), data, 0o644); err != nil {
		f.logger.Warn("failed to write user data", "file", name, "err", err)
	}
}
