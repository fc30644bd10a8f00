package display

import (
	"strings"
	"testing"
	"time"

	"github.com/gauthierbraillon/dashmix/internal/content"
)

func TestTerminalFeed_ShowsNewsFields(t *testing.T) {
	item := content.NewsItem{
		ItemID:      "news-1-0-99",
		Title:       "Go 1.25 Released",
		Description: "The latest Go release is out.",
		URL:         "https://example.com/go",
		Source:      "Go Blog",
		Author:      "The Go Team",
		PublishedAt: time.Now(),
	}

	output := NewTerminalFormatter().FormatItem(item, false)

	for _, want := range []string{"Go 1.25 Released", "Go Blog", "The Go Team", "https://example.com/go", "NEWS"} {
		if !strings.Contains(output, want) {
			t.Errorf("user should see %q in news output, got:\n%s", want, output)
		}
	}
}

func TestTerminalFeed_ShowsMovieFields(t *testing.T) {
	item := content.MovieItem{
		ItemID:   "movie-tt0816692",
		Title:    "Interstellar",
		Overview: "A team travels through a wormhole.",
		Year:     "2014",
		Rating:   8.7,
		Runtime:  "169 min",
		Director: "Christopher Nolan",
	}

	output := NewTerminalFormatter().FormatItem(item, false)

	for _, want := range []string{"Interstellar", "2014", "8.7", "169 min", "Christopher Nolan", "MOVIE"} {
		if !strings.Contains(output, want) {
			t.Errorf("user should see %q in movie output, got:\n%s", want, output)
		}
	}
}

func TestTerminalFeed_ShowsSocialFields(t *testing.T) {
	item := content.SocialItem{
		ItemID:    "social-7-1",
		Title:     "Shipping a side project",
		Body:      "Finally launched it.",
		Username:  "casey",
		Hashtags:  []string{"tech", "go"},
		CreatedAt: time.Now(),
	}

	output := NewTerminalFormatter().FormatItem(item, false)

	for _, want := range []string{"Shipping a side project", "@casey", "#tech", "#go", "SOCIAL"} {
		if !strings.Contains(output, want) {
			t.Errorf("user should see %q in social output, got:\n%s", want, output)
		}
	}
}

func TestTerminalFeed_AlwaysShowsItemID(t *testing.T) {
	items := []content.Item{
		content.NewsItem{ItemID: "news-1-0-1", PublishedAt: time.Now()},
		content.MovieItem{ItemID: "movie-tt1"},
		content.SocialItem{ItemID: "social-1-1", CreatedAt: time.Now()},
	}

	formatter := NewTerminalFormatter()
	for _, item := range items {
		output := formatter.FormatItem(item, false)
		if !strings.Contains(output, "id: "+item.ID()) {
			t.Errorf("user needs the id to favorite or reorder, missing in:\n%s", output)
		}
	}
}

func TestTerminalFeed_MarksFavorites(t *testing.T) {
	item := content.NewsItem{ItemID: "news-1-0-1", Title: "Favorited story", PublishedAt: time.Now()}
	formatter := NewTerminalFormatter()

	plain := formatter.FormatItem(item, false)
	marked := formatter.FormatItem(item, true)

	if strings.Contains(plain, "♥") {
		t.Error("unfavorited items must not carry the mark")
	}
	if !strings.Contains(marked, "♥") {
		t.Error("favorited items must carry the mark")
	}
}

func TestTerminalFeed_EmptyFeedMessage(t *testing.T) {
	output := NewTerminalFormatter().FormatFeed(nil, nil)

	if output != "No items to display.\n" {
		t.Errorf("empty feed should show a friendly message, got %q", output)
	}
}

func TestTerminalFeed_SeparatesItems(t *testing.T) {
	items := []content.Item{
		content.NewsItem{ItemID: "a", Title: "One", PublishedAt: time.Now()},
		content.NewsItem{ItemID: "b", Title: "Two", PublishedAt: time.Now()},
	}

	output := NewTerminalFormatter().FormatFeed(items, nil)

	if strings.Count(output, "---") != 1 {
		t.Errorf("expected one separator between two items, got:\n%s", output)
	}
}

func TestFormatTimestamp_RelativeTimes(t *testing.T) {
	formatter := NewTerminalFormatter()
	testCases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", time.Now().Add(-30 * time.Second), "just now"},
		{"minutes ago", time.Now().Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour ago", time.Now().Add(-61 * time.Minute), "1 hour ago"},
		{"days ago", time.Now().Add(-49 * time.Hour), "2 days ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatter.FormatTimestamp(tc.t); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatTimestamp_OldDatesAbsolute(t *testing.T) {
	old := time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)

	got := NewTerminalFormatter().FormatTimestamp(old)

	if got != "Mar 14, 2023" {
		t.Errorf("dates over a week old should be absolute, got %q", got)
	}
}

func TestTruncateText(t *testing.T) {
	formatter := NewTerminalFormatter()

	if got := formatter.TruncateText("short", 10); got != "short" {
		t.Errorf("short text should pass through, got %q", got)
	}

	long := strings.Repeat("x", 50)
	got := formatter.TruncateText(long, 20)
	if len(got) != 20 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 20 chars ending in ellipsis, got %q (len %d)", got, len(got))
	}
}
