package repository

const (
	insertShortLink = `
		INSERT INTO urls (url, path)
		VALUES ($1, $2)
		RETURNING id, url, path, created_at
	`

	selectShortLinkByURL = `
		SELECT id, url, path, created_at
		FROM urls
		WHERE url = $1
	`

	selectShortLinkByPath = `
		SELECT id, url, path, created_at
		FROM urls
		WHERE path = $1
	`
)

// Constraint names from the create_urls migration.
const (
	urlUniqueConstraint  = "urls_url_key"
	pathUniqueConstraint = "urls_path_key"
)
