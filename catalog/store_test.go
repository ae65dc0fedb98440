package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcvaldiviag/STREAMIX-sub000/models"
)

func TestSeedDataIsWellFormed(t *testing.T) {
	items, err := seedItems()
	require.NoError(t, err)
	require.NotEmpty(t, items)

	seen := make(map[string]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %q", item.ID)
		seen[item.ID] = true

		assert.NotEmpty(t, item.Name, "item %q has no name", item.ID)
		assert.Greater(t, item.PriceUSD, 0.0, "item %q has no USD price", item.ID)
		assert.Greater(t, item.PriceBS, 0.0, "item %q has no BS price", item.ID)

		switch item.Kind {
		case models.KindProduct:
			assert.Empty(t, item.IncludedNames, "product %q must not list included names", item.ID)
		case models.KindCombo:
			assert.NotEmpty(t, item.IncludedNames, "combo %q must list included names", item.ID)
		default:
			t.Errorf("item %q has unknown kind %q", item.ID, item.Kind)
		}
	}
}

func TestMemoryStoreListKeepsSeedOrder(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	for i, item := range items {
		assert.Equal(t, i+1, item.Position)
	}
}

func TestMemoryStoreGet(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)

	item, err := store.Get(context.Background(), "netflix")
	require.NoError(t, err)
	assert.Equal(t, models.KindProduct, item.Kind)

	_, err = store.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)

	item, err := store.Get(context.Background(), "netflix")
	require.NoError(t, err)
	item.PriceUSD = 999

	again, err := store.Get(context.Background(), "netflix")
	require.NoError(t, err)
	assert.NotEqual(t, 999.0, again.PriceUSD)
}
