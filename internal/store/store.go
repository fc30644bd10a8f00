// Package store holds the aggregation state for all three content
// providers: per-provider paginated collections, loading and error flags,
// and the merged search results.
//
// Load operations for different providers are independent; one provider's
// latency or failure never blocks another's. Overlapping loads for the same
// provider are serialized by sequence number: each dispatch invalidates all
// earlier in-flight requests for that provider, and a stale completion is
// discarded instead of overwriting newer data.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/gauthierbraillon/dashmix/internal/content"
	"github.com/gauthierbraillon/dashmix/internal/movies"
	"github.com/gauthierbraillon/dashmix/internal/news"
	"github.com/gauthierbraillon/dashmix/internal/social"
)

// searchResultLimit caps each provider's contribution to merged search
// results.
const searchResultLimit = 5

// NewsSource is the news provider contract consumed by the store.
type NewsSource interface {
	TopHeadlines(ctx context.Context, categories, countries []string, page int) ([]news.Article, error)
	Search(ctx context.Context, query string) ([]news.Article, error)
}

// MovieSource is the movie provider contract consumed by the store.
type MovieSource interface {
	Popular(ctx context.Context, page int) ([]movies.Movie, error)
	ByGenre(ctx context.Context, genres []string, page int) ([]movies.Movie, error)
	Search(ctx context.Context, query string) ([]movies.Movie, error)
}

// SocialSource is the social provider contract consumed by the store.
type SocialSource interface {
	Posts(ctx context.Context, page int) ([]social.Post, error)
	Search(ctx context.Context, query string) ([]social.Post, error)
}

// Collection is the public view of one provider's paginated state.
type Collection struct {
	Items   []content.Item
	Page    int
	HasMore bool
	Loading bool
	Err     string
}

// Snapshot is a point-in-time copy of the whole store state.
type Snapshot struct {
	News   Collection
	Movies Collection
	Social Collection

	SearchResults []content.Item
	SearchLoading bool
	SearchErr     string
}

// collection is the internal provider state plus its request sequence.
type collection struct {
	items   []content.Item
	page    int
	hasMore bool
	loading bool
	err     string
	seq     uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for item id construction.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store aggregates content from the three providers. Safe for concurrent
// use; load operations block until their provider resolves, so callers run
// them on their own goroutines when loading providers in parallel.
type Store struct {
	mu        sync.Mutex
	news      collection
	movies    collection
	social    collection
	searchRes []content.Item
	searchLd  bool
	searchErr string
	searchSeq uint64

	newsSrc   NewsSource
	movieSrc  MovieSource
	socialSrc SocialSource
	logger    *log.Logger
	now       func() time.Time
}

// New creates a Store over the three provider clients.
func New(newsSrc NewsSource, movieSrc MovieSource, socialSrc SocialSource, opts ...Option) *Store {
	s := &Store{
		news:      emptyCollection(),
		movies:    emptyCollection(),
		social:    emptyCollection(),
		newsSrc:   newsSrc,
		movieSrc:  movieSrc,
		socialSrc: socialSrc,
		logger:    log.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func emptyCollection() collection {
	return collection{page: 1, hasMore: true}
}

// LoadNews fetches one page of headlines. Page 1 replaces the collection;
// later pages append.
func (s *Store) LoadNews(ctx context.Context, categories, countries []string, page int) {
	seq := s.begin(&s.news)

	articles, err := s.newsSrc.TopHeadlines(ctx, categories, countries, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.news.seq {
		s.logger.Debug("discarding stale news load", "page", page)
		return
	}
	s.news.loading = false
	if err != nil {
		s.news.err = "Failed to fetch news"
		return
	}

	now := s.now()
	items := make([]content.Item, 0, len(articles))
	for i, a := range articles {
		id := fmt.Sprintf("news-%d-%d-%d", page, i, now.UnixMilli())
		items = append(items, content.NormalizeNews(a, id, now))
	}
	commitPage(&s.news, items, page, news.PageSize)
}

// LoadMovies fetches one page of movies, by genre when any genres are
// selected and from the popular seed list otherwise.
func (s *Store) LoadMovies(ctx context.Context, genres []string, page int) {
	seq := s.begin(&s.movies)

	var (
		records []movies.Movie
		err     error
	)
	if len(genres) > 0 {
		records, err = s.movieSrc.ByGenre(ctx, genres, page)
	} else {
		records, err = s.movieSrc.Popular(ctx, page)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.movies.seq {
		s.logger.Debug("discarding stale movie load", "page", page)
		return
	}
	s.movies.loading = false
	if err != nil {
		s.movies.err = "Failed to fetch movies"
		return
	}

	items := make([]content.Item, 0, len(records))
	for _, m := range records {
		items = append(items, content.NormalizeMovie(m, "movie-"+m.ImdbID))
	}
	commitPage(&s.movies, items, page, movies.PageSize)
}

// LoadSocial fetches one page of social posts. The selected hashtags seed
// the fallback tags for posts that arrive without any.
func (s *Store) LoadSocial(ctx context.Context, hashtags []string, page int) {
	seq := s.begin(&s.social)

	posts, err := s.socialSrc.Posts(ctx, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.social.seq {
		s.logger.Debug("discarding stale social load", "page", page)
		return
	}
	s.social.loading = false
	if err != nil {
		s.social.err = "Failed to fetch social posts"
		return
	}

	now := s.now()
	items := make([]content.Item, 0, len(posts))
	for _, p := range posts {
		id := fmt.Sprintf("social-%d-%d", p.ID, page)
		items = append(items, content.NormalizeSocial(p, id, hashtags, now))
	}
	commitPage(&s.social, items, page, social.PageSize)
}

// Search fans out to all three providers' search concurrently and merges
// whatever succeeded. One provider failing only zeroes that provider's
// contribution; it never fails the whole search.
func (s *Store) Search(ctx context.Context, query string) {
	s.mu.Lock()
	s.searchSeq++
	seq := s.searchSeq
	s.searchLd = true
	s.searchErr = ""
	s.mu.Unlock()

	var (
		newsRes   []news.Article
		newsErr   error
		movieRes  []movies.Movie
		movieErr  error
		socialRes []social.Post
		socialErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		newsRes, newsErr = s.newsSrc.Search(ctx, query)
		return nil // settle all, keep successes
	})
	g.Go(func() error {
		movieRes, movieErr = s.movieSrc.Search(ctx, query)
		return nil
	})
	g.Go(func() error {
		socialRes, socialErr = s.socialSrc.Search(ctx, query)
		return nil
	})
	_ = g.Wait()

	now := s.now()
	results := make([]content.Item, 0, 3*searchResultLimit)

	if newsErr != nil {
		s.logger.Warn("news search failed", "query", query, "err", newsErr)
	} else {
		for i, a := range capSlice(newsRes, searchResultLimit) {
			id := fmt.Sprintf("search-news-%d-%d", i, now.UnixMilli())
			results = append(results, content.NormalizeNews(a, id, now))
		}
	}
	if movieErr != nil {
		s.logger.Warn("movie search failed", "query", query, "err", movieErr)
	} else {
		for _, m := range capSlice(movieRes, searchResultLimit) {
			results = append(results, content.NormalizeMovie(m, "search-movie-"+m.ImdbID))
		}
	}
	if socialErr != nil {
		s.logger.Warn("social search failed", "query", query, "err", socialErr)
	} else {
		for _, p := range capSlice(socialRes, searchResultLimit) {
			id := fmt.Sprintf("search-social-%d-%d", p.ID, now.UnixMilli())
			results = append(results, content.NormalizeSocial(p, id, nil, now))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.searchSeq {
		s.logger.Debug("discarding stale search", "query", query)
		return
	}
	s.searchLd = false
	if ctx.Err() != nil {
		s.searchErr = "Search failed"
		return
	}
	s.searchRes = results
}

// ClearSearch drops the merged search results.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchSeq++
	s.searchRes = nil
	s.searchLd = false
	s.searchErr = ""
}

// Reset empties every provider collection and invalidates all in-flight
// loads.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.news.seq++
	s.movies.seq++
	s.social.seq++
	seqs := [3]uint64{s.news.seq, s.movies.seq, s.social.seq}
	s.news = emptyCollection()
	s.movies = emptyCollection()
	s.social = emptyCollection()
	s.news.seq, s.movies.seq, s.social.seq = seqs[0], seqs[1], seqs[2]
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		News:          s.news.public(),
		Movies:        s.movies.public(),
		Social:        s.social.public(),
		SearchResults: append([]content.Item{}, s.searchRes...),
		SearchLoading: s.searchLd,
		SearchErr:     s.searchErr,
	}
}

// begin registers a new load for a collection, invalidating earlier
// in-flight loads, and returns the sequence number to commit under.
// Loading is set before any suspension point, so level-triggered fetch-more
// checks are self-limiting.
func (s *Store) begin(c *collection) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.seq++
	c.loading = true
	c.err = ""
	return c.seq
}

// commitPage applies a successful page fetch: page 1 replaces, later pages
// append. A short page is the sole has-more signal.
func commitPage(c *collection, items []content.Item, page, fullPage int) {
	if page == 1 {
		c.items = items
	} else {
		c.items = append(c.items, items...)
	}
	c.page = page
	c.hasMore = len(items) == fullPage
}

func (c collection) public() Collection {
	return Collection{
		Items:   append([]content.Item{}, c.items...),
		Page:    c.page,
		HasMore: c.hasMore,
		Loading: c.loading,
		Err:     c.err,
	}
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
