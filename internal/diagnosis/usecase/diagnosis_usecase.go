package usecase

import (
	"context"

	"kisan-backend/internal/diagnosis/domain"
	"kisan-backend/internal/diagnosis/dto"
	"kisan-backend/internal/diagnosis/repository"
	"kisan-backend/pkg/classifier"
)

// Notifier records an in-app notification (and pushes it to the farmer's
// devices). Satisfied by the notification usecase.
type Notifier interface {
	Notify(ctx context.Context, userID, notifType, content string)
}

// DiagnosisUsecase defines the crop-disease diagnosis operations
type DiagnosisUsecase interface {
	Diagnose(ctx context.Context, userID, crop, description, imagePath string) (*dto.DiagnoseResponse, error)
	History(userID string) ([]domain.CropDiagnosis, error)
}

// diagnosisUsecase implements DiagnosisUsecase interface
type diagnosisUsecase struct {
	repo       repository.DiagnosisRepository
	classifier classifier.Classifier
	notifier   Notifier
}

// NewDiagnosisUsecase creates a new instance of diagnosisUsecase
func NewDiagnosisUsecase(repo repository.DiagnosisRepository, clf classifier.Classifier, notifier Notifier) DiagnosisUsecase {
	return &diagnosisUsecase{
		repo:       repo,
		classifier: clf,
		notifier:   notifier,
	}
}

func (u *diagnosisUsecase) Diagnose(ctx context.Context, userID, crop, description, imagePath string) (*dto.DiagnoseResponse, error) {
	result, err := u.classifier.Classify(ctx, crop, imagePath, description)
	if err != nil {
		return nil, err
	}

	diag := &domain.CropDiagnosis{
		UserID:      userID,
		Crop:        crop,
		Description: description,
		PhotoPath:   imagePath,
		Result:      result,
	}
	if err := u.repo.Create(diag); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, userID, "diagnosis", crop+": "+result)
	}

	return &dto.DiagnoseResponse{
		DiagnosisID: diag.ID,
		Crop:        diag.Crop,
		Result:      diag.Result,
		Timestamp:   diag.CreatedAt,
	}, nil
}

func (u *diagnosisUsecase) History(userID string) ([]domain.CropDiagnosis, error) {
	return u.repo.FindByUserID(userID, 50)
}
