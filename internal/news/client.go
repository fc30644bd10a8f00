package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/gauthierbraillon/dashmix/internal/health"
)

const defaultBaseURL = "https://api.mediastack.com/v1"

// Page sizes expected from the upstream. A short page is the has-more signal.
const (
	PageSize    = 20
	SearchLimit = 10
)

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

// WithRateLimit overrides the politeness limiter applied before each request.
func WithRateLimit(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithClock overrides the time source used for synthetic timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// Client is a Mediastack news API client. Expected upstream failures never
// surface as errors on the page or search paths; the client logs a warning
// and returns a synthetic batch instead, so callers always get a well-typed
// result. Errors are returned only when the context is done.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	tracker    *health.Tracker
	limiter    *rate.Limiter
	logger     *log.Logger
	now        func() time.Time
}

// NewClient creates a Mediastack client. The tracker is shared state: a 429
// recorded by one call short-circuits subsequent calls for the cooldown.
func NewClient(apiKey string, tracker *health.Tracker, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		tracker:    tracker,
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		logger:     log.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TopHeadlines fetches one page of headlines for the first selected category
// and country.
func (c *Client) TopHeadlines(ctx context.Context, categories, countries []string, page int) ([]Article, error) {
	if c.tracker.ShouldSkip() {
		c.logger.Info("mediastack in cooldown, serving synthetic headlines", "page", page)
		return SyntheticHeadlines(categories, page, c.now()), nil
	}

	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("countries", firstOr(countries, "us"))
	params.Set("categories", firstOr(categories, "general"))
	params.Set("limit", strconv.Itoa(PageSize))
	params.Set("offset", strconv.Itoa((page-1)*PageSize))
	params.Set("sort", "published_desc")

	articles, err := c.fetch(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("mediastack headlines degraded, serving synthetic data", "page", page, "err", err)
		return SyntheticHeadlines(categories, page, c.now()), nil
	}
	return articles, nil
}

// Search fetches articles matching the query keywords.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	if c.tracker.ShouldSkip() {
		c.logger.Info("mediastack in cooldown, serving synthetic search results", "query", query)
		return SyntheticSearch(query, c.now()), nil
	}

	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("keywords", query)
	params.Set("limit", strconv.Itoa(SearchLimit))
	params.Set("sort", "published_desc")

	articles, err := c.fetch(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("mediastack search degraded, serving synthetic data", "query", query, "err", err)
		return SyntheticSearch(query, c.now()), nil
	}
	return articles, nil
}

// fetch performs one /news request and classifies the outcome against the
// health tracker. Any non-nil error means the caller should fall back.
func (c *Client) fetch(ctx context.Context, params url.Values) ([]Article, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/news?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dashmix/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.tracker.MarkError()
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.tracker.MarkError()
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		c.tracker.MarkError()
		return nil, fmt.Errorf("mediastack authentication failed - check your API key")
	case http.StatusTooManyRequests:
		c.tracker.MarkRateLimited()
		return nil, fmt.Errorf("mediastack rate limit exceeded - cooling down for %s", health.DefaultCooldown)
	default:
		c.tracker.MarkError()
		return nil, fmt.Errorf("mediastack returned HTTP %d", resp.StatusCode)
	}

	var envelope newsResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.tracker.MarkError()
		return nil, fmt.Errorf("failed to parse news response: %w", err)
	}
	if envelope.Error != nil {
		c.tracker.MarkError()
		return nil, fmt.Errorf("mediastack error: %s", envelope.Error.Message)
	}

	c.tracker.MarkSuccess()
	return envelope.Data, nil
}

// API response types (private - implementation detail)

type newsResponse struct {
	Data  []Article `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
