package entities

import "time"

// ShortLink maps an original URL to its short path. Rows are never updated.
type ShortLink struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`  // Normalized original URL, unique
	Path      string    `json:"path"` // 7-character short code, unique
	CreatedAt time.Time `json:"created_at"`
}
