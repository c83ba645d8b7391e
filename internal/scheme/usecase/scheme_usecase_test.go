package usecase

import (
	"context"
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

type recordingNotifier struct {
	contents []string
}

func (n *recordingNotifier) Notify(_ context.Context, _, _, content string) {
	n.contents = append(n.contents, content)
}

func newTestUsecase(t *testing.T) (SchemeUsecase, *gorm.DB, *recordingNotifier) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Scheme{}, &domain.SchemeApplication{}))

	notifier := &recordingNotifier{}
	return NewSchemeUsecase(repository.NewSchemeRepository(db), notifier), db, notifier
}

func TestEligibleSchemesExcludesPastDeadlines(t *testing.T) {
	uc, db, _ := newTestUsecase(t)

	future := time.Now().Add(30 * 24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(&domain.Scheme{ID: "s1", Name: "PM-Kisan", Deadline: &future}).Error)
	require.NoError(t, db.Create(&domain.Scheme{ID: "s2", Name: "Closed Scheme", Deadline: &past}).Error)
	require.NoError(t, db.Create(&domain.Scheme{ID: "s3", Name: "Open Ended"}).Error)

	schemes, err := uc.EligibleSchemes()
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	for _, s := range schemes {
		assert.NotEqual(t, "Closed Scheme", s.Name)
	}
}

func TestApplyCreatesApplicationAndNotifies(t *testing.T) {
	uc, db, notifier := newTestUsecase(t)

	require.NoError(t, db.Create(&domain.Scheme{ID: "s1", Name: "PM-Kisan"}).Error)

	application, err := uc.Apply(context.Background(), "user-1", "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, application.Status)

	applications, err := uc.Applications("user-1")
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "PM-Kisan", applications[0].Scheme.Name)

	require.Len(t, notifier.contents, 1)
	assert.Contains(t, notifier.contents[0], "PM-Kisan")
}

func TestApplyUnknownSchemeFails(t *testing.T) {
	uc, _, notifier := newTestUsecase(t)

	_, err := uc.Apply(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrSchemeNotFound)
	assert.Empty(t, notifier.contents)
}
