package database

import (
	"context"
	"testing"

	"restaurant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetMenuItem(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	item := &models.MenuItem{Name: "Ribeye steak", Category: "Mains", Price: 25, Image: "/static/img/ribeye.jpg"}
	require.NoError(t, db.CreateMenuItem(ctx, item))
	assert.NotZero(t, item.ID)

	got, err := db.GetMenuItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ribeye steak", got.Name)
	assert.Equal(t, float64(25), got.Price)

	_, err = db.GetMenuItem(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMenuSections(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seed := []*models.MenuItem{
		{Name: "Ribeye steak", Category: "Mains", Price: 25},
		{Name: "Greek salad", Category: "Salads", Price: 9},
		{Name: "Pasta Carbonara", Category: "Mains", Price: 16},
	}
	for _, item := range seed {
		require.NoError(t, db.CreateMenuItem(ctx, item))
	}

	sections, err := db.GetMenuSections(ctx)
	require.NoError(t, err)

	// Sections come back sorted by category, items in insertion order.
	require.Len(t, sections, 2)
	assert.Equal(t, "Mains", sections[0].Category)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, "Ribeye steak", sections[0].Items[0].Name)
	assert.Equal(t, "Pasta Carbonara", sections[0].Items[1].Name)
	assert.Equal(t, "Salads", sections[1].Category)
}

func TestGetMenuSections_Empty(t *testing.T) {
	db := setupTestDB(t)

	sections, err := db.GetMenuSections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sections)
}
