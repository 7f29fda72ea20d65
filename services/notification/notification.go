package notification

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	userRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/user"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// NotificationService sends FCM pushes. All methods are fire-and-forget:
// failures are logged and never returned to the caller.
type NotificationService interface {
	// Send delivers a push to every registered device token.
	Send(ctx context.Context, title, message string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) Send(ctx context.Context, title, message string) {
	logger := utils.GetLogger()

	tokens, err := s.Users.ListFCMTokens(ctx)
	if err != nil {
		logger.Error("notification: failed to list device tokens", zap.Error(err))
		return
	}
	for _, token := range tokens {
		s.push(ctx, token, title, message)
	}
}

func (s *DefaultNotificationService) push(ctx context.Context, token, title, message string) {
	logger := utils.GetLogger()

	if utils.FCMClient == nil {
		logger.Warn("notification: FCM client not initialized, dropping push",
			zap.String("title", title))
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "chakra_crm",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Error("notification: failed to send FCM message",
			zap.String("title", title), zap.Error(err))
	}
}
