// Package social provides a client for the JSONPlaceholder social posts API.
package social

import "time"

// Post is a social post joined with its author's username and enriched
// with hashtags and a timestamp, neither of which the upstream carries.
type Post struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Username  string    `json:"username"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is a raw upstream user record, joined to posts by ID.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
