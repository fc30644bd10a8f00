package aggregator

import (
	"math/rand"

	"github.com/gauthierbraillon/dashmix/internal/content"
)

// Compose returns the display sequence for a view. It is a pure function of
// its input except for the trending view, which shuffles within priority
// groups on every call.
func Compose(view View, in Input) []content.Item {
	switch view {
	case ViewSearch:
		return in.SearchResults
	case ViewFavorites:
		return filterFavorites(in.concat(), in.Favorites)
	case ViewTrending:
		return trending(in.concat())
	case ViewFeed:
		fallthrough
	default:
		if len(in.ContentOrder) > 0 {
			return orderedByIDs(in.concat(), in.ContentOrder)
		}
		return interleave(in.concat())
	}
}

// Reorder moves the item at index from to index to and returns the resulting
// full id sequence, suitable for persisting as the user's content order.
// Returns nil when either index is out of range.
func Reorder(items []content.Item, from, to int) []string {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil
	}

	reordered := make([]content.Item, 0, len(items))
	reordered = append(reordered, items...)
	moved := reordered[from]
	reordered = append(reordered[:from], reordered[from+1:]...)

	rest := append([]content.Item{}, reordered[to:]...)
	reordered = append(reordered[:to], moved)
	reordered = append(reordered, rest...)

	ids := make([]string, len(reordered))
	for i, item := range reordered {
		ids[i] = item.ID()
	}
	return ids
}

// filterFavorites keeps items whose id is favorited, preserving their order
// in the concatenated collections.
func filterFavorites(items []content.Item, favorites []string) []content.Item {
	wanted := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		wanted[id] = struct{}{}
	}

	kept := make([]content.Item, 0, len(favorites))
	for _, item := range items {
		if _, ok := wanted[item.ID()]; ok {
			kept = append(kept, item)
		}
	}
	return kept
}

// trending takes the first items of the concatenation and puts news ahead of
// everything else; within each group the order is randomized per call. This
// is a placeholder policy, not a ranking guarantee: callers must not rely on
// the order within a group being stable.
func trending(items []content.Item) []content.Item {
	if len(items) > trendingLimit {
		items = items[:trendingLimit]
	}

	var newsGroup, rest []content.Item
	for _, item := range items {
		if item.Kind() == content.KindNews {
			newsGroup = append(newsGroup, item)
		} else {
			rest = append(rest, item)
		}
	}
	rand.Shuffle(len(newsGroup), func(i, j int) { newsGroup[i], newsGroup[j] = newsGroup[j], newsGroup[i] })
	rand.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	return append(newsGroup, rest...)
}

// orderedByIDs emits items in the explicit id order first, each id consumed
// at most once and missing ids skipped, then any remaining items in their
// natural order.
func orderedByIDs(items []content.Item, order []string) []content.Item {
	index := make(map[string]int, len(items))
	for i, item := range items {
		if _, ok := index[item.ID()]; !ok {
			index[item.ID()] = i
		}
	}

	used := make([]bool, len(items))
	out := make([]content.Item, 0, len(items))
	for _, id := range order {
		if i, ok := index[id]; ok && !used[i] {
			out = append(out, items[i])
			used[i] = true
		}
	}
	for i, item := range items {
		if !used[i] {
			out = append(out, item)
		}
	}
	return out
}

// interleave partitions items by kind and merges the partitions round-robin
// (news, movie, social at each round), skipping exhausted kinds. Relative
// order within each kind is preserved.
func interleave(items []content.Item) []content.Item {
	var newsItems, movieItems, socialItems []content.Item
	for _, item := range items {
		switch item.Kind() {
		case content.KindNews:
			newsItems = append(newsItems, item)
		case content.KindMovie:
			movieItems = append(movieItems, item)
		case content.KindSocial:
			socialItems = append(socialItems, item)
		}
	}

	out := make([]content.Item, 0, len(items))
	for i := 0; len(out) < len(items); i++ {
		if i < len(newsItems) {
			out = append(out, newsItems[i])
		}
		if i < len(movieItems) {
			out = append(out, movieItems[i])
		}
		if i < len(socialItems) {
			out = append(out, socialItems[i])
		}
	}
	return out
}
