package usecase

import (
	"kisan-backend/internal/market/domain"
	"kisan-backend/internal/market/repository"
)

// MarketUsecase defines the market price lookup operations
type MarketUsecase interface {
	GetPrices(crop, mandi string) ([]domain.MarketPrice, error)
}

// marketUsecase implements MarketUsecase interface
type marketUsecase struct {
	repo repository.MarketRepository
}

// NewMarketUsecase creates a new instance of marketUsecase
func NewMarketUsecase(repo repository.MarketRepository) MarketUsecase {
	return &marketUsecase{
		repo: repo,
	}
}

func (u *marketUsecase) GetPrices(crop, mandi string) ([]domain.MarketPrice, error) {
	return u.repo.FindByCrop(crop, mandi)
}
