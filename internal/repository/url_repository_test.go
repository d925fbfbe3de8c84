package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shortLinkColumns = []string{"id", "url", "path", "created_at"}

func newTestRepository(t *testing.T) (URLRepository, sqlmock.Sqlmock, *Metrics) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	return NewURLRepository(db, metrics), mock, metrics
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		queryErr   error
		wantErr    error
		wantStatus string
	}{
		{
			name:       "success",
			wantStatus: StatusSuccess,
		},
		{
			name:       "path collision",
			queryErr:   &pq.Error{Code: uniqueViolation, Constraint: pathUniqueConstraint},
			wantErr:    ErrDuplicatePath,
			wantStatus: StatusCollision,
		},
		{
			name:       "url already stored",
			queryErr:   &pq.Error{Code: uniqueViolation, Constraint: urlUniqueConstraint},
			wantErr:    ErrDuplicateURL,
			wantStatus: StatusCollision,
		},
		{
			name:       "other constraint",
			queryErr:   &pq.Error{Code: "23514", Constraint: "urls_path_length"},
			wantStatus: StatusError,
		},
		{
			name:       "connection failure",
			queryErr:   errors.New("connection refused"),
			wantStatus: StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, metrics := newTestRepository(t)

			expect := mock.ExpectQuery(insertShortLink).WithArgs("https://example.com/", "abcdefg")
			if tt.queryErr != nil {
				expect.WillReturnError(tt.queryErr)
			} else {
				expect.WillReturnRows(sqlmock.NewRows(shortLinkColumns).
					AddRow(int64(1), "https://example.com/", "abcdefg", createdAt))
			}

			link, err := repo.Create(ctx, "https://example.com/", "abcdefg")

			switch {
			case tt.queryErr == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(1), link.ID)
				assert.Equal(t, "https://example.com/", link.URL)
				assert.Equal(t, "abcdefg", link.Path)
				assert.Equal(t, createdAt, link.CreatedAt)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, link)
			default:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.queryErr)
				assert.NotErrorIs(t, err, ErrDuplicatePath)
				assert.NotErrorIs(t, err, ErrDuplicateURL)
			}

			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QueryTotal.WithLabelValues("Create", tt.wantStatus)))
		})
	}
}

func TestFindByPath(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock, metrics := newTestRepository(t)
		mock.ExpectQuery(selectShortLinkByPath).WithArgs("abcdefg").
			WillReturnRows(sqlmock.NewRows(shortLinkColumns).
				AddRow(int64(7), "https://example.com/", "abcdefg", time.Now()))

		link, err := repo.FindByPath(ctx, "abcdefg")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", link.URL)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QueryTotal.WithLabelValues("FindByPath", StatusSuccess)))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, metrics := newTestRepository(t)
		mock.ExpectQuery(selectShortLinkByPath).WithArgs("zzzzzzz").
			WillReturnRows(sqlmock.NewRows(shortLinkColumns))

		_, err := repo.FindByPath(ctx, "zzzzzzz")
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QueryTotal.WithLabelValues("FindByPath", StatusNotFound)))
	})
}

func TestFindByURL(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock, _ := newTestRepository(t)
		mock.ExpectQuery(selectShortLinkByURL).WithArgs("https://example.com/").
			WillReturnRows(sqlmock.NewRows(shortLinkColumns).
				AddRow(int64(3), "https://example.com/", "Hk3mP9q", time.Now()))

		link, err := repo.FindByURL(ctx, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, "Hk3mP9q", link.Path)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, mock, metrics := newTestRepository(t)
		dbErr := errors.New("connection reset by peer")
		mock.ExpectQuery(selectShortLinkByURL).WithArgs("https://example.com/").WillReturnError(dbErr)

		_, err := repo.FindByURL(ctx, "https://example.com/")
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QueryTotal.WithLabelValues("FindByURL", StatusError)))
	})
}

func TestPing(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectPing()
	require.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	require.Error(t, repo.Ping(context.Background()))
}
