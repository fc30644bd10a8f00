// Package userdata holds the user's preferences, favorites, and custom
// content ordering.
//
// The in-memory State is free of I/O: every mutation notifies an optional
// save hook, and the FileStore collaborator writes the change through to
// disk. Loading at startup is best-effort; malformed stored data falls back
// to defaults.
package userdata

import "sync"

// Preferences selects what each provider fetches. All slices are
// membership-tested sets; order carries no meaning.
type Preferences struct {
	Categories     []string `json:"categories"`
	NewsCountries  []string `json:"newsCountries"`
	MovieGenres    []string `json:"movieGenres"`
	SocialHashtags []string `json:"socialHashtags"`
}

// DefaultPreferences returns the out-of-the-box selection.
func DefaultPreferences() Preferences {
	return Preferences{
		Categories:     []string{"technology", "business", "entertainment"},
		NewsCountries:  []string{"us"},
		MovieGenres:    []string{"Action", "Comedy", "Drama"},
		SocialHashtags: []string{"tech", "design", "programming"},
	}
}

// Change identifies which piece of user state mutated.
type Change string

const (
	ChangePreferences  Change = "preferences"
	ChangeFavorites    Change = "favorites"
	ChangeContentOrder Change = "contentOrder"
)

// Snapshot is a copy of the full user state.
type Snapshot struct {
	Preferences  Preferences
	Favorites    []string
	ContentOrder []string
}

// SaveHook observes mutations. It runs outside the state lock.
type SaveHook func(Change, Snapshot)

// StateOption configures a State.
type StateOption func(*State)

// WithSaveHook registers the persistence write-through hook.
func WithSaveHook(hook SaveHook) StateOption {
	return func(s *State) {
		s.onChange = hook
	}
}

// State is the mutable user state. Safe for concurrent use.
type State struct {
	mu           sync.Mutex
	prefs        Preferences
	favorites    []string
	contentOrder []string
	onChange     SaveHook
}

// NewState creates a State with default preferences.
func NewState(opts ...StateOption) *State {
	s := &State{prefs: DefaultPreferences()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the state with previously persisted values without
// firing the save hook.
func (s *State) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = snap.Preferences
	s.favorites = append([]string{}, snap.Favorites...)
	s.contentOrder = append([]string{}, snap.ContentOrder...)
}

// Preferences returns the current preferences.
func (s *State) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetPreferences replaces the preferences.
func (s *State) SetPreferences(p Preferences) {
	s.mu.Lock()
	s.prefs = p
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(ChangePreferences, snap)
}

// Favorites returns the favorited item ids in insertion order.
func (s *State) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.favorites...)
}

// AddFavorite favorites an item id. Adding an existing id is a no-op.
func (s *State) AddFavorite(id string) {
	s.mu.Lock()
	for _, existing := range s.favorites {
		if existing == id {
			s.mu.Unlock()
			return
		}
	}
	s.favorites = append(s.favorites, id)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(ChangeFavorites, snap)
}

// RemoveFavorite unfavorites an item id.
func (s *State) RemoveFavorite(id string) {
	s.mu.Lock()
	kept := s.favorites[:0]
	for _, existing := range s.favorites {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.favorites = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(ChangeFavorites, snap)
}

// IsFavorite reports whether an item id is favorited.
func (s *State) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.favorites {
		if existing == id {
			return true
		}
	}
	return false
}

// ContentOrder returns the explicit feed ordering, empty when unset.
func (s *State) ContentOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.contentOrder...)
}

// SetContentOrder replaces the explicit feed ordering.
func (s *State) SetContentOrder(ids []string) {
	s.mu.Lock()
	s.contentOrder = append([]string{}, ids...)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(ChangeContentOrder, snap)
}

// Snapshot returns a copy of the full state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Preferences:  s.prefs,
		Favorites:    append([]string{}, s.favorites...),
		ContentOrder: append([]string{}, s.contentOrder...),
	}
}

func (s *State) notify(change Change, snap Snapshot) {
	if s.onChange != nil {
		s.onChange(change, snap)
	}
}
