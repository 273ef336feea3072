package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/halit/campushub/internal/app/models"
)

// NotificationListLimit caps how many notifications one listing returns.
const NotificationListLimit = 50

// notificationStore is the persistence surface the notification service needs.
type notificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// NotificationService defines the interface for in-app notification operations
type NotificationService interface {
	// Notify records a notification for a user. Failures are logged and
	// swallowed so callers can fan out without risking their own operation.
	Notify(ctx context.Context, userID int64, title, message string, link *string)
	ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo notificationStore
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo notificationStore, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify writes an in-app notification. Errors never propagate to the caller.
func (s *notificationServiceImpl) Notify(ctx context.Context, userID int64, title, message string, link *string) {
	n := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).
			Int64("userID", userID).
			Str("title", title).
			Msg("Failed to create notification")
	}
}

// ListForUser returns the user's most recent notifications, newest first.
// Out-of-range limits fall back to NotificationListLimit.
func (s *notificationServiceImpl) ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > NotificationListLimit {
		limit = NotificationListLimit
	}
	return s.notificationRepo.ListByUser(ctx, userID, limit)
}

// MarkRead marks one of the user's notifications as read.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead marks all of the user's notifications as read.
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
