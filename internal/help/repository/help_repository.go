package repository

import (
	"time"

	"kisan-backend/internal/help/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HelpRepository defines the interface for help history access
type HelpRepository interface {
	Create(record *domain.HelpHistory) error
	FindByUserID(userID string) ([]domain.HelpHistory, error)
}

// helpRepository implements HelpRepository interface
type helpRepository struct {
	db *gorm.DB
}

// NewHelpRepository creates a new instance of helpRepository
func NewHelpRepository(db *gorm.DB) HelpRepository {
	return &helpRepository{
		db: db,
	}
}

func (r *helpRepository) Create(record *domain.HelpHistory) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	return r.db.Create(record).Error
}

func (r *helpRepository) FindByUserID(userID string) ([]domain.HelpHistory, error) {
	var records []domain.HelpHistory
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}
