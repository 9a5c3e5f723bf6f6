package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/db"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	coll db.Collection
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(database db.Database) *NotificationRepository {
	return &NotificationRepository{
		coll: database.Collection(NotificationsCollection),
	}
}

// Create appends a notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	id, err := r.coll.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	notification.ID = id
	return nil
}

// FindLatest returns at most limit notifications, newest first
func (r *NotificationRepository) FindLatest(ctx context.Context, limit int64) ([]models.Notification, error) {
	var notifications []models.Notification
	opts := db.FindOptions{SortField: "time", Order: db.Descending, Limit: limit}
	if err := r.coll.Find(ctx, nil, opts, &notifications); err != nil {
		return nil, fmt.Errorf("error retrieving notifications: %w", err)
	}
	return notifications, nil
}
