package movies

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const defaultBaseURL = "https://www.omdbapi.com"

// PageSize is the expected full-page size for movie listings.
const PageSize = 10

// SearchDetailLimit caps how many search hits get a detail lookup.
const SearchDetailLimit = 5

// maxConcurrentLookups bounds the search/detail fan-out per page.
const maxConcurrentLookups = 10

// OMDb has no popular or by-genre listing endpoint. Popular pages are built
// from parallel title searches over this curated seed list, ten titles per
// page slice.
var popularTitles = []string{
	"Avengers", "Spider-Man", "Batman", "Superman", "Iron Man", "Thor", "Captain America",
	"Guardians of the Galaxy", "Wonder Woman", "Black Panther", "Deadpool", "X-Men",
	"Fast and Furious", "Mission Impossible", "John Wick", "Matrix", "Star Wars", "Jurassic Park",
	"Transformers", "Pirates of the Caribbean", "Harry Potter", "Lord of the Rings", "Hobbit",
	"Inception", "Interstellar", "Dark Knight", "Joker", "Aquaman", "Shazam", "Venom",
}

// Genre filtering is approximated by searching a keyword drawn from a fixed
// table per genre.
var genreKeywords = map[string][]string{
	"Action":    {"action", "adventure", "superhero"},
	"Comedy":    {"comedy", "funny", "humor"},
	"Drama":     {"drama", "emotional", "story"},
	"Horror":    {"horror", "scary", "thriller"},
	"Romance":   {"romance", "love", "romantic"},
	"Sci-Fi":    {"science fiction", "sci-fi", "space"},
	"Fantasy":   {"fantasy", "magic", "wizard"},
	"Animation": {"animation", "animated", "cartoon"},
}

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLogger sets the logger used for degradation warnings.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithKeywordPicker overrides how a genre keyword is chosen (useful for
// testing; the default picks pseudo-randomly).
func WithKeywordPicker(pick func(n int) int) ClientOption {
	return func(c *Client) {
		c.pickKeyword = pick
	}
}

// Client is an OMDb API client. The listing paths (Popular, ByGenre)
// tolerate partial failure: any individual title lookup failing drops that
// title, never the page. When nothing at all can be fetched they degrade to
// a synthetic batch instead of returning an error.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  HTTPClient
	logger      *log.Logger
	pickKeyword func(n int) int
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{},
		logger:      log.Default(),
		pickKeyword: rand.Intn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Popular fetches one page of well-known movies via the seed-list fan-out.
// Past the end of the seed list it returns an empty (short) page.
func (c *Client) Popular(ctx context.Context, page int) ([]Movie, error) {
	start := (page - 1) * PageSize
	if start >= len(popularTitles) {
		return []Movie{}, nil
	}
	end := start + PageSize
	if end > len(popularTitles) {
		end = len(popularTitles)
	}
	titles := popularTitles[start:end]

	slots := make([]*Movie, len(titles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, title := range titles {
		i, title := i, title
		g.Go(func() error {
			movie, err := c.lookupTitle(gctx, title)
			if err != nil {
				c.logger.Warn("movie lookup failed", "title", title, "err", err)
				return nil // partial failure never fails the page
			}
			slots[i] = movie
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	movies := collect(slots)
	if len(movies) == 0 {
		c.logger.Warn("omdb popular listing degraded, serving synthetic data", "page", page)
		return SyntheticMovies(page), nil
	}
	return movies, nil
}

// ByGenre fetches one page of movies approximating the first selected genre.
func (c *Client) ByGenre(ctx context.Context, genres []string, page int) ([]Movie, error) {
	genre := "Action"
	if len(genres) > 0 && genres[0] != "" {
		genre = genres[0]
	}
	keywords, ok := genreKeywords[genre]
	if !ok {
		keywords = []string{"movie"}
	}
	keyword := keywords[c.pickKeyword(len(keywords))]

	params := url.Values{}
	params.Set("s", keyword)
	params.Set("type", "movie")
	params.Set("page", strconv.Itoa(page))

	hits, err := c.search(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("omdb genre search degraded, serving synthetic data", "genre", genre, "err", err)
		return SyntheticMovies(page), nil
	}
	if len(hits) > PageSize {
		hits = hits[:PageSize]
	}
	return c.fetchDetails(ctx, hits), nil
}

// Search fetches movies matching the query, with detail lookups for the
// first few hits. Unlike the listing paths it returns errors, so the
// tri-provider search can settle per source.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("type", "movie")

	hits, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(hits) > SearchDetailLimit {
		hits = hits[:SearchDetailLimit]
	}
	return c.fetchDetails(ctx, hits), nil
}

// lookupTitle resolves a seed title to a detailed record via search + detail.
func (c *Client) lookupTitle(ctx context.Context, title string) (*Movie, error) {
	params := url.Values{}
	params.Set("s", title)
	params.Set("type", "movie")

	hits, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("no results for %q", title)
	}
	return c.detail(ctx, hits[0].ImdbID)
}

// fetchDetails resolves search hits to detailed records in a bounded
// fan-out, dropping any hit whose lookup fails.
func (c *Client) fetchDetails(ctx context.Context, hits []searchHit) []Movie {
	slots := make([]*Movie, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, hit := range hits {
		i, hit := i, hit
		g.Go(func() error {
			movie, err := c.detail(gctx, hit.ImdbID)
			if err != nil {
				c.logger.Warn("movie detail fetch failed", "imdb_id", hit.ImdbID, "err", err)
				return nil
			}
			slots[i] = movie
			return nil
		})
	}
	_ = g.Wait()
	return collect(slots)
}

func (c *Client) search(ctx context.Context, params url.Values) ([]searchHit, error) {
	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return resp.Search, nil
}

func (c *Client) detail(ctx context.Context, imdbID string) (*Movie, error) {
	params := url.Values{}
	params.Set("i", imdbID)

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("failed to parse detail response: %w", err)
	}
	if !movie.Valid() {
		return nil, fmt.Errorf("omdb returned no record for %s", imdbID)
	}
	return &movie, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dashmix/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func collect(slots []*Movie) []Movie {
	movies := make([]Movie, 0, len(slots))
	for _, m := range slots {
		if m != nil && m.Valid() {
			movies = append(movies, *m)
		}
	}
	return movies
}

// API response types (private - implementation detail)

type searchResponse struct {
	Search   []searchHit `json:"Search"`
	Response string      `json:"Response"`
}

type searchHit struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
}
