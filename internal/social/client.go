package social

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
)

const defaultBaseURL = "https://jsonplaceholder.typicode.com"

// Page sizes expected from the upstream.
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

// WithClock overrides the time source used for synthesized timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// Client fetches social posts and joins them to their authors. The upstream
// has neither hashtags nor timestamps, so both are synthesized per post.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     *log.Logger
	now        func() time.Time
}

// NewClient creates a new social posts client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		logger:     log.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Posts fetches one page of posts with usernames joined in. Expected
// upstream failures degrade to a synthetic batch, never an error; errors are
// returned only when the context is done.
func (c *Client) Posts(ctx context.Context, page int) ([]Post, error) {
	raw, err := c.fetchPosts(ctx, fmt.Sprintf("%s/posts?_page=%d&_limit=%d", c.baseURL, page, PageSize))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("social posts degraded, serving synthetic data", "page", page, "err", err)
		return SyntheticPosts(page, c.now()), nil
	}

	users, err := c.fetchUsers(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("social user join degraded, serving synthetic data", "page", page, "err", err)
		return SyntheticPosts(page, c.now()), nil
	}

	return c.join(raw, users), nil
}

// Search fetches all posts and filters them by a case-insensitive substring
// match on title or body. Unlike Posts it returns errors, so the
// tri-provider search can settle per source.
func (c *Client) Search(ctx context.Context, query string) ([]Post, error) {
	raw, err := c.fetchPosts(ctx, c.baseURL+"/posts")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]rawPost, 0, SearchLimit)
	for _, p := range raw {
		if strings.Contains(strings.ToLower(p.Title), needle) || strings.Contains(strings.ToLower(p.Body), needle) {
			matched = append(matched, p)
			if len(matched) == SearchLimit {
				break
			}
		}
	}

	users, err := c.fetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return c.join(matched, users), nil
}

// join attaches usernames by user id and synthesizes the fields the
// upstream lacks. Posts with no matching user fall back to "user<N>".
func (c *Client) join(raw []rawPost, users []User) []Post {
	byID := make(map[int]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}

	now := c.now()
	posts := make([]Post, 0, len(raw))
	for _, p := range raw {
		username, ok := byID[p.UserID]
		if !ok {
			username = fmt.Sprintf("user%d", p.UserID)
		}
		posts = append(posts, Post{
			ID:        p.ID,
			UserID:    p.UserID,
			Title:     p.Title,
			Body:      p.Body,
			Username:  username,
			Hashtags:  synthesizeHashtags(p.ID),
			CreatedAt: syntheticTimestamp(p.ID, now),
		})
	}
	return posts
}

func (c *Client) fetchPosts(ctx context.Context, url string) ([]rawPost, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var posts []rawPost
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("failed to parse posts response: %w", err)
	}
	return posts, nil
}

func (c *Client) fetchUsers(ctx context.Context) ([]User, error) {
	body, err := c.get(ctx, c.baseURL+"/users")
	if err != nil {
		return nil, err
	}
	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users response: %w", err)
	}
	return users, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, fmt.Errorf("social API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// rawPost is the upstream post shape before the user join.
type rawPost struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
