package models

// CreateURLResponse represents the response after creating or fetching a short URL
type CreateURLResponse struct {
	URL string `json:"url"` // https://<domain>/<path>
}

// RoutesResponse lists the registered routes grouped by method, served on GET /
type RoutesResponse struct {
	Routes RouteTable `json:"routes"`
}

type RouteTable struct {
	Get  []string `json:"get"`
	Post []string `json:"post"`
}

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
}
