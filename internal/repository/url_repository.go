package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"shortlink-be/internal/entities"
)

//go:generate mockgen -destination=mocks/url_repository.go -package=mocks shortlink-be/internal/repository URLRepository

var (
	ErrNotFound      = errors.New("short link not found")
	ErrDuplicateURL  = errors.New("url already shortened")
	ErrDuplicatePath = errors.New("path already taken")
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// URLRepository defines the datastore operations on short links
type URLRepository interface {
	Create(ctx context.Context, url, path string) (*entities.ShortLink, error)
	FindByURL(ctx context.Context, url string) (*entities.ShortLink, error)
	FindByPath(ctx context.Context, path string) (*entities.ShortLink, error)
	Ping(ctx context.Context) error
}

type urlRepository struct {
	db      *sql.DB
	metrics *Metrics
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sql.DB, metrics *Metrics) URLRepository {
	return &urlRepository{db: db, metrics: metrics}
}

// Create inserts a new short link. A clash on either unique column is
// reported as ErrDuplicateURL or ErrDuplicatePath.
func (r *urlRepository) Create(ctx context.Context, url, path string) (*entities.ShortLink, error) {
	const queryName = "Create"
	start := time.Now()

	link, err := scanShortLink(r.db.QueryRowContext(ctx, insertShortLink, url, path))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case pathUniqueConstraint:
				r.metrics.observe(queryName, StatusCollision, start)
				return nil, ErrDuplicatePath
			case urlUniqueConstraint:
				r.metrics.observe(queryName, StatusCollision, start)
				return nil, ErrDuplicateURL
			}
		}
		r.metrics.observe(queryName, StatusError, start)
		return nil, fmt.Errorf("failed to create short link: %w", err)
	}

	r.metrics.observe(queryName, StatusSuccess, start)
	return link, nil
}

// FindByURL finds the short link of a normalized URL
func (r *urlRepository) FindByURL(ctx context.Context, url string) (*entities.ShortLink, error) {
	return r.findOne(ctx, "FindByURL", selectShortLinkByURL, url)
}

// FindByPath finds the short link behind a path
func (r *urlRepository) FindByPath(ctx context.Context, path string) (*entities.ShortLink, error) {
	return r.findOne(ctx, "FindByPath", selectShortLinkByPath, path)
}

func (r *urlRepository) findOne(ctx context.Context, queryName, query string, arg string) (*entities.ShortLink, error) {
	start := time.Now()

	link, err := scanShortLink(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		r.metrics.observe(queryName, StatusNotFound, start)
		return nil, ErrNotFound
	}
	if err != nil {
		r.metrics.observe(queryName, StatusError, start)
		return nil, fmt.Errorf("failed to find short link: %w", err)
	}

	r.metrics.observe(queryName, StatusSuccess, start)
	return link, nil
}

// Ping checks that the database is reachable
func (r *urlRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanShortLink(row *sql.Row) (*entities.ShortLink, error) {
	var link entities.ShortLink
	err := row.Scan(
		&link.ID,
		&link.URL,
		&link.Path,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}
