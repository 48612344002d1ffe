package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offcampus/internal/models/db_models"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *db_models.Notification) error
	GetByID(ctx context.Context, notificationID string) (*db_models.Notification, error)
	// GetForUser returns the user's own notifications plus every global
	// notification the user has not dismissed, newest first, capped at limit.
	GetForUser(ctx context.Context, userID string, limit int) ([]db_models.Notification, error)
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	ListUndismissedGlobalIDs(ctx context.Context, userID string) ([]string, error)
	InsertDismissal(ctx context.Context, userID, notificationID string) error
	DeleteOwned(ctx context.Context, notificationID, userID string) error
	DeleteAllOwned(ctx context.Context, userID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepositoryInterface {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) Create(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationRepository) GetByID(ctx context.Context, notificationID string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := n.db.WithContext(ctx).
		First(&notification, "notification_id = ?", notificationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// visibleScope is the shared predicate: rows addressed to the user or global,
// minus anything the user has a dismissal row for. Set difference in SQL, not
// a fetch-and-filter in memory.
func (n *notificationRepository) visibleScope(ctx context.Context, userID string) *gorm.DB {
	dismissed := n.db.Model(&db_models.DismissedNotification{}).
		Select("notification_id").
		Where("user_id = ?", userID)

	return n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? OR user_id IS NULL", userID).
		Where("notification_id NOT IN (?)", dismissed)
}

func (n *notificationRepository) GetForUser(ctx context.Context, userID string, limit int) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := n.visibleScope(ctx, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (n *notificationRepository) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := n.visibleScope(ctx, userID).Count(&count).Error
	return count, err
}

func (n *notificationRepository) ListUndismissedGlobalIDs(ctx context.Context, userID string) ([]string, error) {
	dismissed := n.db.Model(&db_models.DismissedNotification{}).
		Select("notification_id").
		Where("user_id = ?", userID)

	var ids []string
	err := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id IS NULL").
		Where("notification_id NOT IN (?)", dismissed).
		Pluck("notification_id", &ids).Error
	return ids, err
}

func (n *notificationRepository) InsertDismissal(ctx context.Context, userID, notificationID string) error {
	dismissal := db_models.DismissedNotification{
		UserID:         userID,
		NotificationID: notificationID,
		DismissedAt:    time.Now().Unix(),
	}
	// Conflict ignored: dismissing twice is a no-op.
	return n.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dismissal).Error
}

func (n *notificationRepository) DeleteOwned(ctx context.Context, notificationID, userID string) error {
	return n.db.WithContext(ctx).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Delete(&db_models.Notification{}).Error
}

func (n *notificationRepository) DeleteAllOwned(ctx context.Context, userID string) error {
	return n.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.Notification{}).Error
}

func (n *notificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := n.db.WithContext(ctx).
		Where("created_at < ?", cutoff.Unix()).
		Delete(&db_models.Notification{})
	if result.Error != nil {
		return 0, result.Error
	}

	// Dismissals pointing at deleted notifications are dead weight.
	remaining := n.db.Model(&db_models.Notification{}).Select("notification_id")
	err := n.db.WithContext(ctx).
		Where("notification_id NOT IN (?)", remaining).
		Delete(&db_models.DismissedNotification{}).Error
	return result.RowsAffected, err
}
