package usecase

import (
	"context"
	"testing"

	authdomain "kisan-backend/internal/auth/domain"
	authrepo "kisan-backend/internal/auth/repository"
	"kisan-backend/internal/notification/domain"
	"kisan-backend/internal/notification/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestUsecase(t *testing.T) (NotificationUsecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Notification{}, &authdomain.FCMToken{}))

	// nil FCM client: push disabled, rows still recorded
	uc := NewNotificationUsecase(repository.NewNotificationRepository(db), authrepo.NewFCMTokenRepository(db), nil)
	return uc, db
}

func TestNotifyRecordsRowWithoutPushClient(t *testing.T) {
	uc, _ := newTestUsecase(t)

	uc.Notify(context.Background(), "user-1", "diagnosis", "tomato: Late Blight")

	notifications, err := uc.List("user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "diagnosis", notifications[0].Type)
	assert.False(t, notifications[0].Read)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	uc, _ := newTestUsecase(t)

	uc.Notify(context.Background(), "user-1", "scheme", "Application submitted")
	notifications, err := uc.List("user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	id := notifications[0].ID

	// Another farmer cannot mark it.
	ok, err := uc.MarkRead("user-2", id)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.MarkRead("user-1", id)
	require.NoError(t, err)
	assert.True(t, ok)

	notifications, err = uc.List("user-1")
	require.NoError(t, err)
	assert.True(t, notifications[0].Read)
}

func TestMarkReadMissingNotification(t *testing.T) {
	uc, _ := newTestUsecase(t)

	ok, err := uc.MarkRead("user-1", "does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)
}
