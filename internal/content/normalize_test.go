// Package content tests document the normalization contract: no matter how
// sparse or malformed the raw record, every field of the resulting item is
// populated.
package content

import (
	"testing"
	"time"

	"github.com/gauthierbraillon/dashmix/internal/movies"
	"github.com/gauthierbraillon/dashmix/internal/news"
	"github.com/gauthierbraillon/dashmix/internal/social"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNormalizeNews_EmptyRecordGetsDefaults(t *testing.T) {
	item := NormalizeNews(news.Article{}, "news-1-0-1", fixedNow)

	if item.ItemID != "news-1-0-1" {
		t.Errorf("expected id to be preserved, got %q", item.ItemID)
	}
	if item.Title != "No title available" {
		t.Errorf("expected default title, got %q", item.Title)
	}
	if item.Description != "No description available" {
		t.Errorf("expected default description, got %q", item.Description)
	}
	if item.URL != "#" {
		t.Errorf("expected default URL, got %q", item.URL)
	}
	if item.ImageURL == "" {
		t.Error("image URL must never be empty")
	}
	if item.Source != "Unknown Source" {
		t.Errorf("expected default source, got %q", item.Source)
	}
	if !item.PublishedAt.Equal(fixedNow) {
		t.Errorf("expected unparseable timestamp to default to now, got %v", item.PublishedAt)
	}
}

func TestNormalizeNews_ValidRecordPassesThrough(t *testing.T) {
	item := NormalizeNews(news.Article{
		Title:       "Big Story",
		Description: "Details",
		URL:         "https://example.com/big",
		Image:       "https://example.com/img.jpg",
		PublishedAt: "2024-05-30T08:00:00+00:00",
		Source:      "The Wire",
		Author:      "A. Reporter",
	}, "news-1-3-9", fixedNow)

	if item.Title != "Big Story" || item.Source != "The Wire" || item.Author != "A. Reporter" {
		t.Errorf("fields should pass through unchanged, got %+v", item)
	}
	if item.ImageURL != "https://example.com/img.jpg" {
		t.Errorf("valid image should pass through, got %q", item.ImageURL)
	}
	if item.PublishedAt.IsZero() || item.PublishedAt.Equal(fixedNow) {
		t.Errorf("valid timestamp should parse, got %v", item.PublishedAt)
	}
}

func TestNormalizeNews_BrokenImageGetsPlaceholder(t *testing.T) {
	for _, raw := range []string{"", "https://cdn.example.com/null.jpg"} {
		item := NormalizeNews(news.Article{Image: raw}, "id", fixedNow)
		if item.ImageURL != newsPlaceholderImage {
			t.Errorf("image %q should map to placeholder, got %q", raw, item.ImageURL)
		}
	}
}

func TestNormalizeMovie_EmptyRecordGetsDefaults(t *testing.T) {
	item := NormalizeMovie(movies.Movie{}, "movie-tt0")

	if item.Title != "Unknown Title" {
		t.Errorf("expected default title, got %q", item.Title)
	}
	if item.Overview != "No plot available" {
		t.Errorf("expected default overview, got %q", item.Overview)
	}
	if item.PosterURL != moviePlaceholderPoster {
		t.Errorf("expected placeholder poster, got %q", item.PosterURL)
	}
	if item.Year != "2024" {
		t.Errorf("expected default year, got %q", item.Year)
	}
	if item.Rating != 0 {
		t.Errorf("expected rating 0, got %v", item.Rating)
	}
}

func TestNormalizeMovie_RatingParsing(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"8.4", 8.4},
		{"N/A", 0},
		{"", 0},
		{"not-a-number", 0},
	}
	for _, tt := range tests {
		item := NormalizeMovie(movies.Movie{ImdbRating: tt.raw}, "id")
		if item.Rating != tt.want {
			t.Errorf("rating %q: expected %v, got %v", tt.raw, tt.want, item.Rating)
		}
	}
}

func TestNormalizeMovie_NAPosterGetsPlaceholder(t *testing.T) {
	item := NormalizeMovie(movies.Movie{Poster: "N/A"}, "id")
	if item.PosterURL != moviePlaceholderPoster {
		t.Errorf("N/A poster should map to placeholder, got %q", item.PosterURL)
	}
}

func TestNormalizeSocial_EmptyRecordGetsDefaults(t *testing.T) {
	item := NormalizeSocial(social.Post{}, "social-0-1", []string{"tech", "design", "programming"}, fixedNow)

	if item.Title != "Untitled Post" {
		t.Errorf("expected default title, got %q", item.Title)
	}
	if item.Body != "No content available" {
		t.Errorf("expected default body, got %q", item.Body)
	}
	if item.UserID != 1 {
		t.Errorf("expected default user id 1, got %d", item.UserID)
	}
	if item.Username != "user1" {
		t.Errorf("expected username fallback, got %q", item.Username)
	}
	if len(item.Hashtags) != 2 {
		t.Errorf("expected first two fallback tags, got %v", item.Hashtags)
	}
	if !item.CreatedAt.Equal(fixedNow) {
		t.Errorf("expected zero timestamp to default to now, got %v", item.CreatedAt)
	}
}

func TestNormalizeSocial_ExistingFieldsKept(t *testing.T) {
	created := fixedNow.Add(-36 * time.Hour)
	item := NormalizeSocial(social.Post{
		ID:        7,
		UserID:    3,
		Title:     "A post",
		Body:      "Words",
		Username:  "casey",
		Hashtags:  []string{"go"},
		CreatedAt: created,
	}, "social-7-1", []string{"tech"}, fixedNow)

	if item.Username != "casey" {
		t.Errorf("username should pass through, got %q", item.Username)
	}
	if len(item.Hashtags) != 1 || item.Hashtags[0] != "go" {
		t.Errorf("hashtags should pass through, got %v", item.Hashtags)
	}
	if !item.CreatedAt.Equal(created) {
		t.Errorf("timestamp should pass through, got %v", item.CreatedAt)
	}
}

// TestItems_KindAndID documents the discriminant contract: every variant
// reports a non-empty id and its own kind.
func TestItems_KindAndID(t *testing.T) {
	items := []Item{
		NormalizeNews(news.Article{}, "n1", fixedNow),
		NormalizeMovie(movies.Movie{}, "m1"),
		NormalizeSocial(social.Post{}, "s1", nil, fixedNow),
	}
	kinds := []Kind{KindNews, KindMovie, KindSocial}

	for i, item := range items {
		if item.ID() == "" {
			t.Errorf("item %d has empty id", i)
		}
		if item.Kind() != kinds[i] {
			t.Errorf("item %d: expected kind %s, got %s", i, kinds[i], item.Kind())
		}
	}
}
