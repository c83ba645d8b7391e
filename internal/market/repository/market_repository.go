package repository

import (
	"time"

	"kisan-backend/internal/market/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarketRepository defines the interface for market price access
type MarketRepository interface {
	// FindByCrop matches the crop case-insensitively, optionally narrowed
	// to one mandi.
	FindByCrop(crop, mandi string) ([]domain.MarketPrice, error)

	// Upsert refreshes the quoted price for a (crop, mandi) pair.
	Upsert(price *domain.MarketPrice) error
}

// marketRepository implements MarketRepository interface
type marketRepository struct {
	db *gorm.DB
}

// NewMarketRepository creates a new instance of marketRepository
func NewMarketRepository(db *gorm.DB) MarketRepository {
	return &marketRepository{
		db: db,
	}
}

func (r *marketRepository) FindByCrop(crop, mandi string) ([]domain.MarketPrice, error) {
	var prices []domain.MarketPrice
	query := r.db.Where("LOWER(crop) = LOWER(?)", crop)
	if mandi != "" {
		query = query.Where("LOWER(mandi) = LOWER(?)", mandi)
	}
	err := query.Find(&prices).Error
	return prices, err
}

func (r *marketRepository) Upsert(price *domain.MarketPrice) error {
	if price.ID == "" {
		price.ID = uuid.New().String()
	}
	price.UpdatedAt = time.Now()

	// Atomic upsert: INSERT ... ON CONFLICT (crop, mandi) DO UPDATE
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop"}, {Name: "mandi"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "trend", "updated_at"}),
	}).Create(price).Error
}
