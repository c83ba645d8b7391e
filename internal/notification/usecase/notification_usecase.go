package usecase

import (
	"context"
	"log"

	authrepo "kisan-backend/internal/auth/repository"
	"kisan-backend/internal/notification/domain"
	"kisan-backend/internal/notification/repository"
	"kisan-backend/pkg/fcm"
)

// NotificationUsecase defines the notification operations
type NotificationUsecase interface {
	// Notify records a notification and pushes it to the farmer's devices.
	// Push delivery is best effort; the row is the source of truth.
	Notify(ctx context.Context, userID, notifType, content string)

	List(userID string) ([]domain.Notification, error)
	MarkRead(userID, id string) (bool, error)
}

// notificationUsecase implements NotificationUsecase interface
type notificationUsecase struct {
	repo      repository.NotificationRepository
	fcmRepo   authrepo.FCMTokenRepository
	fcmClient *fcm.Client // nil when push is not configured
}

// NewNotificationUsecase creates a new instance of notificationUsecase
func NewNotificationUsecase(repo repository.NotificationRepository, fcmRepo authrepo.FCMTokenRepository, fcmClient *fcm.Client) NotificationUsecase {
	return &notificationUsecase{
		repo:      repo,
		fcmRepo:   fcmRepo,
		fcmClient: fcmClient,
	}
}

func (u *notificationUsecase) Notify(ctx context.Context, userID, notifType, content string) {
	notification := &domain.Notification{
		UserID:  userID,
		Type:    notifType,
		Content: content,
	}
	if err := u.repo.Create(notification); err != nil {
		log.Printf("[Notification] Failed to record notification for user %s: %v", userID, err)
		return
	}

	u.push(ctx, notification)
}

func (u *notificationUsecase) push(ctx context.Context, notification *domain.Notification) {
	if u.fcmClient == nil {
		return
	}

	tokens, err := u.fcmRepo.GetTokensByUserID(notification.UserID)
	if err != nil {
		log.Printf("[Notification] Failed to load device tokens for user %s: %v", notification.UserID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	var tokenStrings []string
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	alert := fcm.Alert{
		Title: "Kisan+",
		Body:  notification.Content,
		Data: map[string]string{
			"type":            notification.Type,
			"notification_id": notification.ID,
		},
	}

	failedTokens, err := u.fcmClient.SendToDevices(ctx, tokenStrings, alert)
	if err != nil {
		log.Printf("[Notification] Push failed for user %s: %v", notification.UserID, err)
		return
	}

	// Prune registrations FCM no longer accepts.
	for _, token := range failedTokens {
		if err := u.fcmRepo.DeleteToken(token); err != nil {
			log.Printf("[Notification] Failed to prune dead token: %v", err)
		}
	}
}

func (u *notificationUsecase) List(userID string) ([]domain.Notification, error) {
	return u.repo.FindByUserID(userID)
}

func (u *notificationUsecase) MarkRead(userID, id string) (bool, error) {
	return u.repo.MarkRead(userID, id)
}
