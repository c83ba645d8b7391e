package repository

import (
	"errors"
	"time"

	"kisan-backend/internal/scheme/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchemeRepository defines the interface for scheme and application access
type SchemeRepository interface {
	FindOpen(now time.Time) ([]domain.Scheme, error)
	FindByID(id string) (*domain.Scheme, error)

	// Upsert refreshes a scheme's details, keyed by its name.
	Upsert(scheme *domain.Scheme) error
	CreateApplication(application *domain.SchemeApplication) error
	FindApplicationsByUserID(userID string) ([]domain.SchemeApplication, error)
}

// schemeRepository implements SchemeRepository interface
type schemeRepository struct {
	db *gorm.DB
}

// NewSchemeRepository creates a new instance of schemeRepository
func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &schemeRepository{
		db: db,
	}
}

// FindOpen returns schemes whose deadline has not passed (or have none).
func (r *schemeRepository) FindOpen(now time.Time) ([]domain.Scheme, error) {
	var schemes []domain.Scheme
	err := r.db.Where("deadline IS NULL OR deadline >= ?", now).Find(&schemes).Error
	return schemes, err
}

func (r *schemeRepository) FindByID(id string) (*domain.Scheme, error) {
	var scheme domain.Scheme
	err := r.db.Where("id = ?", id).First(&scheme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scheme, nil
}

func (r *schemeRepository) Upsert(scheme *domain.Scheme) error {
	if scheme.ID == "" {
		scheme.ID = uuid.New().String()
	}
	if scheme.CreatedAt.IsZero() {
		scheme.CreatedAt = time.Now()
	}

	// Atomic upsert: INSERT ... ON CONFLICT (name) DO UPDATE
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"eligibility_criteria", "docs_needed", "benefits", "deadline"}),
	}).Create(scheme).Error
}

func (r *schemeRepository) CreateApplication(application *domain.SchemeApplication) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	application.CreatedAt = time.Now()
	return r.db.Create(application).Error
}

func (r *schemeRepository) FindApplicationsByUserID(userID string) ([]domain.SchemeApplication, error) {
	var applications []domain.SchemeApplication
	err := r.db.Preload("Scheme").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}
