// Package content defines the unified content model shared by every
// provider, plus the normalization that maps raw provider records into it.
//
// This package enables dashmix to:
// - Represent news articles, movies, and social posts behind one closed type
// - Force exhaustive handling per kind at every consumption site
// - Guarantee downstream code never sees a missing field
package content

import "time"

// Kind identifies the content variant.
type Kind string

const (
	KindNews   Kind = "news"
	KindMovie  Kind = "movie"
	KindSocial Kind = "social"
)

// Item is the closed union of content variants. Only NewsItem, MovieItem,
// and SocialItem implement it; consumers type-switch over those three.
type Item interface {
	// ID returns the session-unique identifier for the item.
	ID() string
	// Kind returns the variant discriminant.
	Kind() Kind

	sealed()
}

// NewsItem is a normalized news article.
type NewsItem struct {
	ItemID      string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
}

func (n NewsItem) ID() string { return n.ItemID }
func (n NewsItem) Kind() Kind { return KindNews }
func (NewsItem) sealed()      {}

// MovieItem is a normalized movie record.
type MovieItem struct {
	ItemID    string  `json:"id"`
	Title     string  `json:"title"`
	Overview  string  `json:"overview"`
	PosterURL string  `json:"poster_url"`
	Year      string  `json:"year"`
	Rating    float64 `json:"rating"`
	Runtime   string  `json:"runtime,omitempty"`
	Genre     string  `json:"genre,omitempty"`
	Director  string  `json:"director,omitempty"`
	Actors    string  `json:"actors,omitempty"`
}

func (m MovieItem) ID() string { return m.ItemID }
func (m MovieItem) Kind() Kind { return KindMovie }
func (MovieItem) sealed()      {}

// SocialItem is a normalized social post.
type SocialItem struct {
	ItemID    string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
}

func (s SocialItem) ID() string { return s.ItemID }
func (s SocialItem) Kind() Kind { return KindSocial }
func (SocialItem) sealed()      {}
