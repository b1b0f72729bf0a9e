package database

import (
	"context"
	"testing"

	"restaurant/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.Nop()
	db, err := NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedMenu(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	items := []models.MenuItem{
		{Name: "Greek salad", Category: "Salads", Price: 9},
		{Name: "Tiramisu", Category: "Desserts", Price: 7},
	}

	require.NoError(t, db.SeedMenu(ctx, items))

	sections, err := db.GetMenuSections(ctx)
	require.NoError(t, err)
	assert.Len(t, sections, 2)

	// A second seed must not duplicate anything.
	require.NoError(t, db.SeedMenu(ctx, items))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count))
	assert.Equal(t, 2, count)
}
