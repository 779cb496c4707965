//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/postboard/postboard-backend/db"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/internal/store/postgres"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/services"
	"github.com/postboard/postboard-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	logger.IsTest = true
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("postboard"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(connStr))

	poolConfig, err := pgxpool.ParseConfig(connStr)
	require.NoError(t, err)
	pool, err := postgres.NewPool(ctx, poolConfig)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestStores_Integration(t *testing.T) {
	pool := setupTestDatabase(t)
	ctx := context.Background()

	users := services.NewUserService(postgres.NewUserStore(pool))
	posts := services.NewPostService(postgres.NewPostStore(pool))

	ada, err := users.Create(ctx, types.UserCreate{Email: "ada@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, ada.ID)
	assert.Nil(t, ada.Name)

	t.Run("duplicate email names the column", func(t *testing.T) {
		_, err := users.Create(ctx, types.UserCreate{Email: "ada@example.com"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Unique constraint failed on fields: email", appErr.Message)
		assert.Equal(t, "23505", appErr.Code)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := posts.Create(ctx, types.PostCreate{Title: "orphan", AuthorID: "00000000-0000-4000-8000-000000000000"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Foreign key constraint failed", appErr.Message)
		assert.Equal(t, "23503", appErr.Code)
	})

	t.Run("value too long", func(t *testing.T) {
		_, err := posts.Create(ctx, types.PostCreate{Title: strings.Repeat("x", 61), AuthorID: ada.ID})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "22001", appErr.Code)
	})

	var created []*types.Post
	for _, title := range []string{"first", "second", "third"} {
		p, err := posts.Create(ctx, types.PostCreate{Title: title, AuthorID: ada.ID})
		require.NoError(t, err)
		assert.False(t, p.Published)
		created = append(created, p)
	}

	t.Run("list newest first with total", func(t *testing.T) {
		page, total, err := posts.List(ctx, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, page, 2)
		assert.Equal(t, "third", page[0].Title)
		assert.Equal(t, "second", page[1].Title)

		rest, total, err := posts.List(ctx, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rest, 1)
		assert.Equal(t, "first", rest[0].Title)
	})

	t.Run("partial update", func(t *testing.T) {
		published := true
		p, err := posts.Update(ctx, created[0].ID, types.PostUpdate{Published: &published})
		require.NoError(t, err)
		assert.True(t, p.Published)
		assert.Equal(t, "first", p.Title)
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := posts.GetByID(ctx, 999999)
		assert.True(t, errors.Is(err, store.ErrNotFound))

		_, err = posts.Delete(ctx, 999999)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Record not found", appErr.Message)
	})

	t.Run("deleting a user removes their posts", func(t *testing.T) {
		_, err := users.Delete(ctx, ada.ID)
		require.NoError(t, err)

		_, total, err := posts.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
