package movies

import "fmt"

// Synthetic movie batches stand in for OMDb when the upstream is degraded.
// Content is a deterministic function of the page number.

var syntheticTitles = []string{
	"Epic Adventure", "Mystery Thriller", "Romantic Comedy", "Action Hero",
	"Space Odyssey", "Fantasy Quest", "Horror Night", "Drama Story",
	"Animated Fun", "Superhero Rise", "Crime Investigation", "War Story",
}

// SyntheticMovies generates one full synthetic page of movie records.
func SyntheticMovies(page int) []Movie {
	out := make([]Movie, 0, PageSize)
	for i := 0; i < PageSize; i++ {
		n := page*PageSize + i + 1
		out = append(out, Movie{
			ImdbID:     fmt.Sprintf("tt%d%06d", page, i),
			Title:      fmt.Sprintf("%s %d", syntheticTitles[i%len(syntheticTitles)], n),
			Plot:       "This is an exciting movie that falls into your preferred genres. A thrilling story with great characters and stunning visuals.",
			Poster:     fmt.Sprintf("https://images.pexels.com/photos/%d?auto=compress&cs=tinysrgb&w=300&h=450", 2000000+n),
			Year:       fmt.Sprintf("%d", 2020+n%5),
			ImdbRating: fmt.Sprintf("%.1f", 7.5+float64(n%20)/10),
			Runtime:    fmt.Sprintf("%d min", 90+(n*7)%60),
			Genre:      "Action, Adventure, Drama",
			Director:   "Famous Director",
			Actors:     "Star Actor, Leading Actress, Supporting Actor",
			Response:   "True",
		})
	}
	return out
}
