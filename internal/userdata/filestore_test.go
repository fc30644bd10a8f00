// FileStore tests document the persistence contract.
//
// Test requirements (this file serves as documentation):
// - Save writes only the changed key's file
// - Load round-trips what Save wrote
// - Missing files fall back to defaults without error
// - A malformed file is skipped; other keys still load
package userdata

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(dir, WithFileStoreLogger(log.New(io.Discard))), dir
}

func TestFileStore_RoundTrip(t *testing.T) {
	files, _ := newTestFileStore(t)

	saved := Snapshot{
		Preferences: Preferences{
			Categories:     []string{"science"},
			NewsCountries:  []string{"gb"},
			MovieGenres:    []string{"Horror"},
			SocialHashtags: []string{"go"},
		},
		Favorites:    []string{"movie-tt1", "news-1-0-5"},
		ContentOrder: []string{"news-1-0-5", "movie-tt1"},
	}
	files.Save(ChangePreferences, saved)
	files.Save(ChangeFavorites, saved)
	files.Save(ChangeContentOrder, saved)

	loaded := files.Load()
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestFileStore_SaveWritesOnlyChangedKey(t *testing.T) {
	files, dir := newTestFileStore(t)

	files.Save(ChangeFavorites, Snapshot{Favorites: []string{"a"}})

	if _, err := os.Stat(filepath.Join(dir, favoritesFile)); err != nil {
		t.Errorf("expected favorites file to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, preferencesFile)); !os.IsNotExist(err) {
		t.Error("preferences file must not be written for a favorites change")
	}
	if _, err := os.Stat(filepath.Join(dir, contentOrderFile)); !os.IsNotExist(err) {
		t.Error("content order file must not be written for a favorites change")
	}
}

func TestFileStore_LoadMissingDirFallsBackToDefaults(t *testing.T) {
	files := NewFileStore(filepath.Join(t.TempDir(), "never-created"), WithFileStoreLogger(log.New(io.Discard)))

	snap := files.Load()

	if !reflect.DeepEqual(snap.Preferences, DefaultPreferences()) {
		t.Errorf("expected default preferences, got %+v", snap.Preferences)
	}
	if len(snap.Favorites) != 0 || len(snap.ContentOrder) != 0 {
		t.Errorf("expected empty favorites and order, got %+v", snap)
	}
}

func TestFileStore_MalformedFileSkipped(t *testing.T) {
	files, dir := newTestFileStore(t)

	files.Save(ChangeFavorites, Snapshot{Favorites: []string{"keep-me"}})
	if err := os.WriteFile(filepath.Join(dir, preferencesFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	snap := files.Load()

	if !reflect.DeepEqual(snap.Preferences, DefaultPreferences()) {
		t.Errorf("malformed preferences must fall back to defaults, got %+v", snap.Preferences)
	}
	if !reflect.DeepEqual(snap.Favorites, []string{"keep-me"}) {
		t.Errorf("other keys must still load, got %v", snap.Favorites)
	}
}
