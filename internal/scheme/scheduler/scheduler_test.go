package scheduler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kisan-backend/internal/scheme/domain"
	"kisan-backend/internal/scheme/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (repository.SchemeRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Scheme{}))
	return repository.NewSchemeRepository(db), db
}

func TestSyncOnceUpsertsCatalog(t *testing.T) {
	repo, db := newTestRepo(t)

	feed := `[
		{"name": "PM-Kisan", "eligibility_criteria": "All landholding farmers", "benefits": "Rs 6000/year"},
		{"name": "Crop Insurance", "benefits": "Premium subsidy", "deadline": "2026-12-31T00:00:00Z"},
		{"name": "", "benefits": "ignored, no name"}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(feed))
	}))
	defer server.Close()

	s := NewSchemeSyncScheduler(repo, server.URL, time.Hour)
	s.syncOnce()

	var schemes []domain.Scheme
	require.NoError(t, db.Order("name").Find(&schemes).Error)
	require.Len(t, schemes, 2)
	assert.Equal(t, "Crop Insurance", schemes[0].Name)
	require.NotNil(t, schemes[0].Deadline)
	assert.Equal(t, "PM-Kisan", schemes[1].Name)
	assert.Equal(t, "Rs 6000/year", schemes[1].Benefits)
}

func TestSyncOnceRefreshesExistingSchemes(t *testing.T) {
	repo, db := newTestRepo(t)

	require.NoError(t, repo.Upsert(&domain.Scheme{Name: "PM-Kisan", Benefits: "Rs 6000/year"}))

	feed := `[{"name": "PM-Kisan", "benefits": "Rs 8000/year"}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(feed))
	}))
	defer server.Close()

	s := NewSchemeSyncScheduler(repo, server.URL, time.Hour)
	s.syncOnce()
	s.syncOnce() // a repeat run must not duplicate rows

	var schemes []domain.Scheme
	require.NoError(t, db.Find(&schemes).Error)
	require.Len(t, schemes, 1)
	assert.Equal(t, "Rs 8000/year", schemes[0].Benefits)
}

func TestSyncOnceLeavesTableAloneOnFeedError(t *testing.T) {
	repo, db := newTestRepo(t)

	require.NoError(t, repo.Upsert(&domain.Scheme{Name: "PM-Kisan", Benefits: "Rs 6000/year"}))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	s := NewSchemeSyncScheduler(repo, server.URL, time.Hour)
	s.syncOnce()

	var count int64
	require.NoError(t, db.Model(&domain.Scheme{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
