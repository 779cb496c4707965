package db

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/db?sslmode=disable", convertToPgx5URL("postgres://u:p@localhost:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u:p@localhost/db", convertToPgx5URL("postgresql://u:p@localhost/db"))
	assert.Equal(t, "pgx5://already", convertToPgx5URL("pgx5://already"))
}

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(migrationFiles, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	r, _, err := src.ReadUp(first)
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	r.Close()

	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, string(body), "ON DELETE CASCADE")

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	down, _, err := src.ReadDown(next)
	require.NoError(t, err)
	down.Close()
}
