package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

// LatestNotificationsLimit caps GET /notifications
const LatestNotificationsLimit = 20

// NotificationService defines the interface for notification operations
type NotificationService interface {
	CreateNotification(ctx context.Context, message string) (*models.Notification, error)
	GetLatestNotifications(ctx context.Context) ([]models.Notification, error)
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	now              func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repositories.NotificationRepository, now func() time.Time) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		now:              now,
	}
}

// CreateNotification stamps the message with the server time and stores it
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, message string) (*models.Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.ErrNotificationMsgMissing
	}

	notification := &models.Notification{
		Message: message,
		Time:    s.now().UTC(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("error saving notification: %w", err)
	}
	return notification, nil
}

// GetLatestNotifications returns the newest notifications first
func (s *notificationServiceImpl) GetLatestNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindLatest(ctx, LatestNotificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}
