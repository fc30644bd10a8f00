// Package aggregator computes the displayed sequence from the per-provider
// collections under one of four view policies.
//
// This package enables dashmix to:
// - Merge news, movies, and social posts into one feed
// - Honor an explicit user-defined ordering in the feed view
// - Interleave content types round-robin when no ordering is set
package aggregator

import "github.com/gauthierbraillon/dashmix/internal/content"

// View selects the ordering policy.
type View string

const (
	ViewFeed      View = "feed"
	ViewTrending  View = "trending"
	ViewFavorites View = "favorites"
	ViewSearch    View = "search"
)

// trendingLimit caps how many items the trending view considers.
const trendingLimit = 20

// Input carries everything Compose needs. Collections keep fetch order.
type Input struct {
	News   []content.Item
	Movies []content.Item
	Social []content.Item

	// SearchResults is returned verbatim by the search view.
	SearchResults []content.Item

	// Favorites holds favorited item ids; only the favorites view reads it.
	Favorites []string

	// ContentOrder is the user's explicit id ordering; only the feed view
	// reads it.
	ContentOrder []string
}

// concat returns the provider collections in their natural concatenation
// order: news, then movies, then social.
func (in Input) concat() []content.Item {
	all := make([]content.Item, 0, len(in.News)+len(in.Movies)+len(in.Social))
	all = append(all, in.News...)
	all = append(all, in.Movies...)
	all = append(all, in.Social...)
	return all
}
