package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lcvaldiviag/STREAMIX-sub000/models"
)

// GormStore serves the catalog from postgres. The table is migrated and
// seeded from the embedded catalog at startup; existing rows are kept.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.CatalogItem{}); err != nil {
		return nil, fmt.Errorf("migrate catalog table: %w", err)
	}
	s := &GormStore{db: db}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GormStore) seed() error {
	items, err := seedItems()
	if err != nil {
		return err
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error; err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func (s *GormStore) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := s.db.WithContext(ctx).Order("position").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return items, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch catalog item: %w", err)
	}
	return &item, nil
}
