package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteConnect_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	pool, err := SQLiteConnect(ctx, ":memory:")
	require.NoError(t, err)
	defer pool.Close()

	var count int
	err = pool.GetContext(ctx, &count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'sessions'`)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Running the schema twice is harmless.
	assert.NoError(t, InitializeDB(ctx, pool))
}
