package repository

import (
	"time"

	"kisan-backend/internal/diagnosis/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiagnosisRepository defines the interface for diagnosis history access
type DiagnosisRepository interface {
	Create(diagnosis *domain.CropDiagnosis) error
	FindByUserID(userID string, limit int) ([]domain.CropDiagnosis, error)
}

// diagnosisRepository implements DiagnosisRepository interface
type diagnosisRepository struct {
	db *gorm.DB
}

// NewDiagnosisRepository creates a new instance of diagnosisRepository
func NewDiagnosisRepository(db *gorm.DB) DiagnosisRepository {
	return &diagnosisRepository{
		db: db,
	}
}

func (r *diagnosisRepository) Create(diagnosis *domain.CropDiagnosis) error {
	if diagnosis.ID == "" {
		diagnosis.ID = uuid.New().String()
	}
	diagnosis.CreatedAt = time.Now()
	return r.db.Create(diagnosis).Error
}

func (r *diagnosisRepository) FindByUserID(userID string, limit int) ([]domain.CropDiagnosis, error) {
	var history []domain.CropDiagnosis
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&history).Error
	return history, err
}
