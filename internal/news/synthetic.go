package news

import (
	"fmt"
	"time"
)

// Synthetic article batches stand in for Mediastack whenever the upstream is
// degraded. Content is a deterministic function of (category, page) so the
// same request always produces the same batch.

var categoryTitles = map[string][]string{
	"general":       {"Breaking News", "Latest Updates", "Current Events", "Today's Headlines"},
	"business":      {"Market Update", "Economic News", "Business Report", "Financial Analysis"},
	"technology":    {"Tech Innovation", "Digital Trends", "Software Update", "AI Development"},
	"sports":        {"Sports Update", "Game Results", "Athletic Performance", "Championship News"},
	"entertainment": {"Celebrity News", "Movie Release", "Entertainment Update", "Show Review"},
	"health":        {"Health Study", "Medical Breakthrough", "Wellness Tips", "Healthcare News"},
	"science":       {"Scientific Discovery", "Research Findings", "Space Exploration", "Innovation"},
}

// Stock imagery keyed by category, cycled by index so batches stay visually
// varied without any network dependency.
var categoryImages = map[string][]string{
	"technology": {
		"https://images.pexels.com/photos/373543/pexels-photo-373543.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181244/pexels-photo-1181244.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181298/pexels-photo-1181298.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181354/pexels-photo-1181354.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181467/pexels-photo-1181467.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181472/pexels-photo-1181472.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181533/pexels-photo-1181533.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1181677/pexels-photo-1181677.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	"business": {
		"https://images.pexels.com/photos/590022/pexels-photo-590022.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/590020/pexels-photo-590020.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/590016/pexels-photo-590016.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/590041/pexels-photo-590041.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/159888/pexels-photo-159888.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/265073/pexels-photo-265073.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/265125/pexels-photo-265125.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/416405/pexels-photo-416405.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/416320/pexels-photo-416320.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	"entertainment": {
		"https://images.pexels.com/photos/274937/pexels-photo-274937.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274131/pexels-photo-274131.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274140/pexels-photo-274140.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274192/pexels-photo-274192.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274200/pexels-photo-274200.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274230/pexels-photo-274230.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274234/pexels-photo-274234.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274240/pexels-photo-274240.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274260/pexels-photo-274260.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/274290/pexels-photo-274290.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	"health": {
		"https://images.pexels.com/photos/40568/medical-appointment-doctor-healthcare-40568.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/356040/pexels-photo-356040.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/263402/pexels-photo-263402.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/139398/thermometer-headache-pain-pills-139398.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/433267/pexels-photo-433267.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1640770/pexels-photo-1640770.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1640771/pexels-photo-1640771.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	"science": {
		"https://images.pexels.com/photos/2280549/pexels-photo-2280549.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/2280551/pexels-photo-2280551.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/2280568/pexels-photo-2280568.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/2280571/pexels-photo-2280571.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/256262/pexels-photo-256262.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/256381/pexels-photo-256381.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/256417/pexels-photo-256417.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/256541/pexels-photo-256541.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/256559/pexels-photo-256559.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/256621/pexels-photo-256621.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	"sports": {
		"https://images.pexels.com/photos/248547/pexels-photo-248547.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248548/pexels-photo-248548.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248549/pexels-photo-248549.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248550/pexels-photo-248550.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248551/pexels-photo-248551.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248552/pexels-photo-248552.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248553/pexels-photo-248553.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248554/pexels-photo-248554.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248555/pexels-photo-248555.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/248556/pexels-photo-248556.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	"general": {
		"https://images.pexels.com/photos/518543/pexels-photo-518543.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518544/pexels-photo-518544.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518545/pexels-photo-518545.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518546/pexels-photo-518546.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518547/pexels-photo-518547.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518548/pexels-photo-518548.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518549/pexels-photo-518549.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518550/pexels-photo-518550.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518551/pexels-photo-518551.jpeg?auto=compress&cs=tinysrgb&w=800",
		"https://images.pexels.com/photos/518552/pexels-photo-518552.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
}

// SyntheticHeadlines generates one full synthetic page for a category.
func SyntheticHeadlines(categories []string, page int, now time.Time) []Article {
	category := firstOr(categories, "general")
	titles, ok := categoryTitles[category]
	if !ok {
		titles = categoryTitles["general"]
	}

	articles := make([]Article, 0, PageSize)
	for i := 0; i < PageSize; i++ {
		n := page*PageSize + i + 1
		articles = append(articles, Article{
			Title:       fmt.Sprintf("%s %d", titles[i%len(titles)], n),
			Description: fmt.Sprintf("This is a sample news description for the %s category. It provides relevant information about current events and developments in the field.", category),
			URL:         fmt.Sprintf("https://example.com/news/%d", n),
			Image:       CategoryImage(category, page*PageSize+i),
			PublishedAt: now.Add(-time.Duration(n*7%168) * time.Hour).Format(time.RFC3339),
			Source:      "NewsSource",
			Author:      "News Reporter",
			Category:    category,
			Country:     "us",
			Language:    "en",
		})
	}
	return articles
}

// SyntheticSearch generates synthetic search results for a query.
func SyntheticSearch(query string, now time.Time) []Article {
	articles := make([]Article, 0, SearchLimit)
	for i := 0; i < SearchLimit; i++ {
		articles = append(articles, Article{
			Title:       fmt.Sprintf("%s Related News Story %d", query, i+1),
			Description: fmt.Sprintf("This is a search result for %q. The article covers relevant topics and provides detailed information about your search query.", query),
			URL:         fmt.Sprintf("https://example.com/search/%s/%d", query, i+1),
			Image:       CategoryImage("general", i),
			PublishedAt: now.Add(-time.Duration((i+1)*5%72) * time.Hour).Format(time.RFC3339),
			Source:      "SearchNews",
			Author:      "Search Reporter",
			Category:    "general",
			Country:     "us",
			Language:    "en",
		})
	}
	return articles
}

// CategoryImage cycles through the stock imagery for a category.
func CategoryImage(category string, index int) string {
	images, ok := categoryImages[category]
	if !ok {
		images = categoryImages["general"]
	}
	return images[index%len(images)]
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return fallback
}
