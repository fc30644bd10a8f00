// Package news provides a client for the Mediastack news API.
package news

// Article is a raw Mediastack article record. Fields may be empty or
// malformed; normalization downstream supplies defaults.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	Language    string `json:"language"`
}
