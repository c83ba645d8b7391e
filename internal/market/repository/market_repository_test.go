package repository

import (
	"testing"

	"kisan-backend/internal/market/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) MarketRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.MarketPrice{}))
	return NewMarketRepository(db)
}

func TestFindByCropIsCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Upsert(&domain.MarketPrice{Crop: "Wheat", Mandi: "Hubli", Price: 2100, Trend: "up"}))
	require.NoError(t, repo.Upsert(&domain.MarketPrice{Crop: "Wheat", Mandi: "Mysore", Price: 2050, Trend: "stable"}))
	require.NoError(t, repo.Upsert(&domain.MarketPrice{Crop: "Rice", Mandi: "Hubli", Price: 3200, Trend: "down"}))

	prices, err := repo.FindByCrop("wheat", "")
	require.NoError(t, err)
	assert.Len(t, prices, 2)

	prices, err = repo.FindByCrop("WHEAT", "hubli")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 2100.0, prices[0].Price)
}

func TestUpsertRefreshesExistingPair(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Upsert(&domain.MarketPrice{Crop: "Onion", Mandi: "Hubli", Price: 1400, Trend: "stable"}))
	require.NoError(t, repo.Upsert(&domain.MarketPrice{Crop: "Onion", Mandi: "Hubli", Price: 1550, Trend: "up"}))

	prices, err := repo.FindByCrop("onion", "hubli")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 1550.0, prices[0].Price)
	assert.Equal(t, "up", prices[0].Trend)
}
