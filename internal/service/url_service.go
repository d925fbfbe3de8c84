package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shortlink-be/internal/cache"
	"shortlink-be/internal/models"
	"shortlink-be/internal/repository"
	"shortlink-be/internal/shortcode"
	"shortlink-be/internal/validation"
)

// DefaultMaxPathAttempts is used when Options.MaxPathAttempts is not set.
const DefaultMaxPathAttempts = 5

//go:generate mockgen -destination=mocks/url_service.go -package=mocks shortlink-be/internal/service URLService

// URLService defines the interface for short link business logic
type URLService interface {
	CreateOrGet(ctx context.Context, rawURL string) (*models.CreateURLResponse, error)
	Resolve(ctx context.Context, path string) (string, error)
	ShortURL(path string) string
	Ping(ctx context.Context) error
}

// Options configures NewURLService.
type Options struct {
	Domain          string // Public domain of the short URLs
	MaxPathAttempts int    // Inserts tried before ErrPathExhausted
}

type urlService struct {
	repo            repository.URLRepository
	cache           cache.Cache
	logger          *slog.Logger
	domain          string
	maxPathAttempts int
	generate        func() (string, error)
}

// NewURLService creates a new URL service. cacheClient may be nil.
func NewURLService(repo repository.URLRepository, cacheClient cache.Cache, logger *slog.Logger, opts Options) URLService {
	if opts.MaxPathAttempts <= 0 {
		opts.MaxPathAttempts = DefaultMaxPathAttempts
	}
	return &urlService{
		repo:            repo,
		cache:           cacheClient,
		logger:          logger,
		domain:          opts.Domain,
		maxPathAttempts: opts.MaxPathAttempts,
		generate:        shortcode.Generate,
	}
}

// CreateOrGet returns the short URL of rawURL, allocating a new path the
// first time a normalized URL is seen.
func (s *urlService) CreateOrGet(ctx context.Context, rawURL string) (*models.CreateURLResponse, error) {
	if !validation.IsValidURL(rawURL) {
		return nil, ErrInvalidURL
	}

	normalized, err := validation.NormalizeURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	link, err := s.repo.FindByURL(ctx, normalized)
	if err == nil {
		return s.response(link.Path), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, &StorageError{Op: "find url", Err: err}
	}

	for attempt := 1; attempt <= s.maxPathAttempts; attempt++ {
		path, err := s.generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate path: %w", err)
		}

		link, err := s.repo.Create(ctx, normalized, path)
		switch {
		case err == nil:
			s.logger.Info("short link created", "path", link.Path, "url", link.URL)
			return s.response(link.Path), nil
		case errors.Is(err, repository.ErrDuplicatePath):
			s.logger.Info("path collision detected, generating a new path", "path", path, "attempt", attempt)
		case errors.Is(err, repository.ErrDuplicateURL):
			// A concurrent request stored the same URL first.
			return s.refetch(ctx, normalized)
		default:
			return nil, &StorageError{Op: "create short link", Err: err}
		}
	}

	s.logger.Error("path allocation exhausted", "url", normalized, "attempts", s.maxPathAttempts)
	return nil, ErrPathExhausted
}

func (s *urlService) refetch(ctx context.Context, normalized string) (*models.CreateURLResponse, error) {
	link, err := s.repo.FindByURL(ctx, normalized)
	if err != nil {
		return nil, &StorageError{Op: "refetch url", Err: err}
	}
	return s.response(link.Path), nil
}

// Resolve returns the original URL stored for path.
func (s *urlService) Resolve(ctx context.Context, path string) (string, error) {
	if !shortcode.HasValidLength(path) {
		return "", ErrInvalidPath
	}

	if s.cache != nil {
		url, err := s.cache.Get(ctx, path)
		if err == nil {
			return url, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("cache lookup failed, falling back to database", "path", path, "error", err)
		}
	}

	link, err := s.repo.FindByPath(ctx, path)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", &StorageError{Op: "find path", Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, path, link.URL); err != nil {
			s.logger.Warn("failed to cache short link", "path", path, "error", err)
		}
	}

	return link.URL, nil
}

// ShortURL composes the public short URL of path.
func (s *urlService) ShortURL(path string) string {
	return fmt.Sprintf("https://%s/%s", s.domain, path)
}

// Ping checks the datastore and, when configured, the cache.
func (s *urlService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return &StorageError{Op: "ping database", Err: err}
	}
	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			return fmt.Errorf("ping cache: %w", err)
		}
	}
	return nil
}

func (s *urlService) response(path string) *models.CreateURLResponse {
	return &models.CreateURLResponse{URL: s.ShortURL(path)}
}
