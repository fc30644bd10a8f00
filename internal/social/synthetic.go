package social

import (
	"fmt"
	"time"
)

// Synthetic post batches stand in for the upstream when it is unreachable.
// Content is a deterministic function of the page number.

var postTopics = []string{
	"Latest tech trends", "Design inspiration", "Programming tips", "Innovation insights",
	"Startup journey", "AI developments", "Web development", "Mobile apps",
	"User experience", "Digital transformation", "Creative process", "Industry news",
}

var hashtagPool = []string{
	"tech", "design", "programming", "innovation", "startup", "ai", "web", "mobile", "ux", "ui",
}

// SyntheticPosts generates one full synthetic page of posts.
func SyntheticPosts(page int, now time.Time) []Post {
	posts := make([]Post, 0, PageSize)
	for i := 0; i < PageSize; i++ {
		n := page*PageSize + i + 1
		userID := i%10 + 1
		posts = append(posts, Post{
			ID:        n,
			UserID:    userID,
			Title:     fmt.Sprintf("%s %d", postTopics[i%len(postTopics)], n),
			Body:      "This is a social media post discussing current trends in technology and innovation. Join the discussion!",
			Username:  fmt.Sprintf("user%d", userID),
			Hashtags:  synthesizeHashtags(n),
			CreatedAt: syntheticTimestamp(n, now),
		})
	}
	return posts
}

// synthesizeHashtags deterministically assigns 1-3 hashtags to a post. The
// upstream has no hashtag concept, so every post gets synthesized tags.
func synthesizeHashtags(postID int) []string {
	count := postID%3 + 1
	tags := make([]string, 0, count)
	for i := 0; i < count; i++ {
		tags = append(tags, hashtagPool[(postID+i*3)%len(hashtagPool)])
	}
	return tags
}

// syntheticTimestamp spreads posts over the trailing week.
func syntheticTimestamp(postID int, now time.Time) time.Time {
	return now.Add(-time.Duration(postID*11%168) * time.Hour)
}
