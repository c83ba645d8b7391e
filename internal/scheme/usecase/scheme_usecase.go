package usecase

import (
	"context"
	"errors"
	"time"

	"kisan-backend/internal/scheme/domain"
	"kisan-backend/internal/scheme/repository"
)

// ErrSchemeNotFound means the applied-for scheme does not exist.
var ErrSchemeNotFound = errors.New("scheme not found")

// Notifier records an in-app notification for the farmer.
type Notifier interface {
	Notify(ctx context.Context, userID, notifType, content string)
}

// SchemeUsecase defines the government scheme operations
type SchemeUsecase interface {
	EligibleSchemes() ([]domain.Scheme, error)
	Apply(ctx context.Context, userID, schemeID string) (*domain.SchemeApplication, error)
	Applications(userID string) ([]domain.SchemeApplication, error)
}

// schemeUsecase implements SchemeUsecase interface
type schemeUsecase struct {
	repo     repository.SchemeRepository
	notifier Notifier
}

// NewSchemeUsecase creates a new instance of schemeUsecase
func NewSchemeUsecase(repo repository.SchemeRepository, notifier Notifier) SchemeUsecase {
	return &schemeUsecase{
		repo:     repo,
		notifier: notifier,
	}
}

// EligibleSchemes lists schemes still open for application.
// TODO: filter by the farmer's land size and crops once scheme criteria are structured.
func (u *schemeUsecase) EligibleSchemes() ([]domain.Scheme, error) {
	return u.repo.FindOpen(time.Now())
}

func (u *schemeUsecase) Apply(ctx context.Context, userID, schemeID string) (*domain.SchemeApplication, error) {
	scheme, err := u.repo.FindByID(schemeID)
	if err != nil {
		return nil, err
	}
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}

	application := &domain.SchemeApplication{
		UserID:   userID,
		SchemeID: scheme.ID,
		Status:   domain.ApplicationStatusApplied,
	}
	if err := u.repo.CreateApplication(application); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, userID, "scheme", "Application submitted for "+scheme.Name)
	}
	return application, nil
}

func (u *schemeUsecase) Applications(userID string) ([]domain.SchemeApplication, error) {
	return u.repo.FindApplicationsByUserID(userID)
}
