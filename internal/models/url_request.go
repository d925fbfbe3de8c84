package models

// CreateURLRequest represents the request body for creating a short URL.
// URL is a pointer so that a missing field can be told apart from an empty one.
type CreateURLRequest struct {
	URL *string `json:"url"`
}
