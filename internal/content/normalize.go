package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gauthierbraillon/dashmix/internal/movies"
	"github.com/gauthierbraillon/dashmix/internal/news"
	"github.com/gauthierbraillon/dashmix/internal/social"
)

// Placeholder images served when an upstream record has no usable URL.
// Every item must render with a resolvable image.
const (
	newsPlaceholderImage   = "https://images.pexels.com/photos/518543?auto=compress&cs=tinysrgb&w=400"
	moviePlaceholderPoster = "https://images.pexels.com/photos/436413?auto=compress&cs=tinysrgb&w=400"
)

// NormalizeNews converts a raw Mediastack article into a NewsItem,
// substituting defaults for every missing field. It never fails.
func NormalizeNews(a news.Article, id string, now time.Time) NewsItem {
	item := NewsItem{
		ItemID:      id,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		ImageURL:    NewsImageURL(a.Image),
		Source:      a.Source,
		Author:      a.Author,
	}
	if item.Title == "" {
		item.Title = "No title available"
	}
	if item.Description == "" {
		item.Description = "No description available"
	}
	if item.URL == "" {
		item.URL = "#"
	}
	if item.Source == "" {
		item.Source = "Unknown Source"
	}
	item.PublishedAt = parseInstant(a.PublishedAt, now)
	return item
}

// NormalizeMovie converts a raw OMDb record into a MovieItem. Unparseable
// ratings degrade to 0 and missing posters to a placeholder; it never fails.
func NormalizeMovie(m movies.Movie, id string) MovieItem {
	item := MovieItem{
		ItemID:    id,
		Title:     m.Title,
		Overview:  m.Plot,
		PosterURL: PosterURL(m.Poster),
		Year:      m.Year,
		Runtime:   m.Runtime,
		Genre:     m.Genre,
		Director:  m.Director,
		Actors:    m.Actors,
	}
	if item.Title == "" {
		item.Title = "Unknown Title"
	}
	if item.Overview == "" {
		item.Overview = "No plot available"
	}
	if item.Year == "" {
		item.Year = "2024"
	}
	if rating, err := strconv.ParseFloat(m.ImdbRating, 64); err == nil {
		item.Rating = rating
	}
	return item
}

// NormalizeSocial converts a joined social post into a SocialItem.
// fallbackTags seeds hashtags when the post carries none; it never fails.
func NormalizeSocial(p social.Post, id string, fallbackTags []string, now time.Time) SocialItem {
	item := SocialItem{
		ItemID:   id,
		Title:    p.Title,
		Body:     p.Body,
		UserID:   p.UserID,
		Username: p.Username,
		Hashtags: p.Hashtags,
	}
	if item.Title == "" {
		item.Title = "Untitled Post"
	}
	if item.Body == "" {
		item.Body = "No content available"
	}
	if item.UserID == 0 {
		item.UserID = 1
	}
	if item.Username == "" {
		item.Username = fmt.Sprintf("user%d", item.UserID)
	}
	if len(item.Hashtags) == 0 {
		if len(fallbackTags) > 2 {
			fallbackTags = fallbackTags[:2]
		}
		item.Hashtags = append([]string{}, fallbackTags...)
	}
	item.CreatedAt = p.CreatedAt
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	return item
}

// NewsImageURL returns a usable image URL for a news article, falling back
// to the placeholder when the upstream URL is absent or known-broken.
func NewsImageURL(raw string) string {
	if raw == "" || strings.Contains(raw, "null") {
		return newsPlaceholderImage
	}
	return raw
}

// PosterURL returns a usable poster URL, treating OMDb's "N/A" sentinel the
// same as a missing value.
func PosterURL(raw string) string {
	if raw == "" || raw == "N/A" || strings.Contains(raw, "null") {
		return moviePlaceholderPoster
	}
	return raw
}

// parseInstant parses an upstream timestamp, trying the formats Mediastack
// is known to emit. Unparseable values degrade to now.
func parseInstant(s string, now time.Time) time.Time {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t
		}
	}
	return now
}
