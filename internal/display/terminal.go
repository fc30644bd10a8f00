// Package display provides terminal output formatting for dashmix.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gauthierbraillon/dashmix/internal/content"
)

const separator = " • "

const descriptionWidth = 160

var (
	newsTag   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	movieTag  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	socialTag = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	metaText  = lipgloss.NewStyle().Faint(true)
	favMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
)

// TerminalFormatter formats content items for terminal display.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// FormatItem formats a single content item for display. Each variant gets
// its own layout; the item id is always printed so it can be favorited or
// reordered by id.
func (f *TerminalFormatter) FormatItem(item content.Item, favorite bool) string {
	var lines []string

	switch v := item.(type) {
	case content.NewsItem:
		header := fmt.Sprintf("%s %s", newsTag.Render("[NEWS]"), v.Title)
		if favorite {
			header += " " + favMark.Render("♥")
		}
		lines = append(lines, header)
		meta := v.Source + separator + f.FormatTimestamp(v.PublishedAt)
		if v.Author != "" {
			meta = "by " + v.Author + separator + meta
		}
		lines = append(lines, "  "+metaText.Render(meta))
		lines = append(lines, "  "+f.TruncateText(v.Description, descriptionWidth))
		lines = append(lines, "  "+v.URL)
	case content.MovieItem:
		header := fmt.Sprintf("%s %s (%s)", movieTag.Render("[MOVIE]"), v.Title, v.Year)
		if favorite {
			header += " " + favMark.Render("♥")
		}
		lines = append(lines, header)
		meta := fmt.Sprintf("★ %.1f", v.Rating)
		if v.Runtime != "" {
			meta += separator + v.Runtime
		}
		if v.Genre != "" {
			meta += separator + v.Genre
		}
		lines = append(lines, "  "+metaText.Render(meta))
		lines = append(lines, "  "+f.TruncateText(v.Overview, descriptionWidth))
		if v.Director != "" {
			lines = append(lines, "  "+metaText.Render("directed by "+v.Director))
		}
	case content.SocialItem:
		header := fmt.Sprintf("%s %s", socialTag.Render("[SOCIAL]"), v.Title)
		if favorite {
			header += " " + favMark.Render("♥")
		}
		lines = append(lines, header)
		lines = append(lines, "  "+metaText.Render("@"+v.Username+separator+f.FormatTimestamp(v.CreatedAt)))
		lines = append(lines, "  "+f.TruncateText(v.Body, descriptionWidth))
		if len(v.Hashtags) > 0 {
			lines = append(lines, "  "+metaText.Render("#"+strings.Join(v.Hashtags, " #")))
		}
	}

	lines = append(lines, "  "+metaText.Render("id: "+item.ID()))
	return strings.Join(lines, "\n") + "\n"
}

// FormatFeed formats multiple content items for display. isFavorite may be
// nil when favorites are not being marked.
func (f *TerminalFormatter) FormatFeed(items []content.Item, isFavorite func(string) bool) string {
	if len(items) == 0 {
		return "No items to display.\n"
	}

	var formatted []string
	for _, item := range items {
		fav := isFavorite != nil && isFavorite(item.ID())
		formatted = append(formatted, f.FormatItem(item, fav))
	}

	return strings.Join(formatted, "\n---\n\n")
}

// FormatTimestamp formats a timestamp as relative time.
func (f *TerminalFormatter) FormatTimestamp(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// pluralize returns "N unit ago" or "N units ago" based on count.
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TruncateText truncates text to maxLen, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return text[:maxLen-3] + "..."
}
