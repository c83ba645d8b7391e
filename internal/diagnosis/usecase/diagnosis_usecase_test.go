package usecase

import (
	"context"
	"testing"

	"kisan-backend/internal/diagnosis/domain"
	"kisan-backend/internal/diagnosis/repository"
	"kisan-backend/pkg/classifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingNotifier struct {
	notifications []string
}

func (n *recordingNotifier) Notify(_ context.Context, _, _, content string) {
	n.notifications = append(n.notifications, content)
}

func newTestUsecase(t *testing.T) (DiagnosisUsecase, *gorm.DB, *recordingNotifier) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.CropDiagnosis{}))

	notifier := &recordingNotifier{}
	uc := NewDiagnosisUsecase(repository.NewDiagnosisRepository(db), classifier.NewMockClassifier(), notifier)
	return uc, db, notifier
}

func TestDiagnosePersistsResultAndNotifies(t *testing.T) {
	uc, db, notifier := newTestUsecase(t)

	resp, err := uc.Diagnose(context.Background(), "user-1", "tomato", "curling leaves", "")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.DiagnosisID)
	assert.Equal(t, "tomato", resp.Crop)
	assert.Contains(t, []string{"Early Blight", "Late Blight", "Leaf Curl"}, resp.Result)

	var row domain.CropDiagnosis
	require.NoError(t, db.Where("id = ?", resp.DiagnosisID).First(&row).Error)
	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, resp.Result, row.Result)

	require.Len(t, notifier.notifications, 1)
	assert.Contains(t, notifier.notifications[0], resp.Result)
}

func TestHistoryReturnsOwnRowsNewestFirst(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Diagnose(context.Background(), "user-1", "rice", "", "")
	require.NoError(t, err)
	_, err = uc.Diagnose(context.Background(), "user-1", "wheat", "", "")
	require.NoError(t, err)
	_, err = uc.Diagnose(context.Background(), "user-2", "onion", "", "")
	require.NoError(t, err)

	history, err := uc.History("user-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, record := range history {
		assert.Equal(t, "user-1", record.UserID)
	}
}
