package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lcvaldiviag/STREAMIX-sub000/models"
)

//go:embed data/catalog.json
var seedData []byte

var ErrNotFound = errors.New("catalog item not found")

// Store serves the storefront catalog. Implementations are read-only at
// runtime; the catalog only changes via re-seeding.
type Store interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	Get(ctx context.Context, id string) (*models.CatalogItem, error)
}

func seedItems() ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := json.Unmarshal(seedData, &items); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	for i := range items {
		items[i].Position = i + 1
	}
	return items, nil
}

// MemoryStore serves the embedded catalog from memory. It is the default
// backend when no database is configured.
type MemoryStore struct {
	items []models.CatalogItem
	byID  map[string]int
}

func NewMemoryStore() (*MemoryStore, error) {
	items, err := seedItems()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}
	return &MemoryStore{items: items, byID: byID}, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.CatalogItem, error) {
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.CatalogItem, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	item := s.items[i]
	return &item, nil
}
