package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

const (
	defaultNotificationLimit = 50
	// Notifications older than this are swept by the retention job.
	notificationRetention = 30 * 24 * time.Hour
)

type NotificationServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error)
	CreateGlobal(ctx context.Context, req request_models.CreateGlobalNotificationRequest) (*response_models.NotificationResponse, error)
	// CreateInternal fans out a notification from another module. Failures are
	// logged and swallowed so a publish never fails over its announcement.
	CreateInternal(ctx context.Context, notificationType, title, message, referenceID string, meta datatypes.JSON)
	GetForUser(ctx context.Context, userID string, limit int) (*response_models.NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (*response_models.UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	DeleteOld(ctx context.Context) (int64, error)
}

type notificationService struct {
	notifications repositories.NotificationRepositoryInterface
}

func NewNotificationService(notifications repositories.NotificationRepositoryInterface) NotificationServiceInterface {
	return &notificationService{notifications: notifications}
}

func (n *notificationService) Create(ctx context.Context, req request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error) {
	if req.Type == "" || req.Title == "" {
		return nil, fmt.Errorf("%w: type and title are required", utils.ErrValidation)
	}

	notification := &db_models.Notification{
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		ReferenceID: req.ReferenceID,
		Meta:        req.Meta,
	}
	if req.UserID != "" {
		userID := req.UserID
		notification.UserID = &userID
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: create notification: %v", utils.ErrDatabaseError, err)
	}
	resp := toNotificationResponse(notification)
	return &resp, nil
}

func (n *notificationService) CreateGlobal(ctx context.Context, req request_models.CreateGlobalNotificationRequest) (*response_models.NotificationResponse, error) {
	return n.Create(ctx, request_models.CreateNotificationRequest{
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		ReferenceID: req.ReferenceID,
		Meta:        req.Meta,
	})
}

func (n *notificationService) CreateInternal(ctx context.Context, notificationType, title, message, referenceID string, meta datatypes.JSON) {
	_, err := n.Create(ctx, request_models.CreateNotificationRequest{
		Type:        notificationType,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
		Meta:        meta,
	})
	if err != nil {
		log.Printf("fan out %s notification for %s: %v", notificationType, referenceID, err)
	}
}

func (n *notificationService) GetForUser(ctx context.Context, userID string, limit int) (*response_models.NotificationListResponse, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	rows, err := n.notifications.GetForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.NotificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toNotificationResponse(&rows[i]))
	}
	return &response_models.NotificationListResponse{Items: items, Count: len(items)}, nil
}

func (n *notificationService) GetUnreadCount(ctx context.Context, userID string) (*response_models.UnreadCountResponse, error) {
	count, err := n.notifications.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &response_models.UnreadCountResponse{Count: count}, nil
}

// MarkAsRead hides one notification from one user. Global rows get a
// dismissal marker and stay visible to everyone else; targeted rows belong to
// exactly one user and are removed outright.
func (n *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	notification, err := n.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if notification == nil {
		return fmt.Errorf("%w: notification %s", utils.ErrNotFound, notificationID)
	}

	if notification.IsGlobal() {
		if err := n.notifications.InsertDismissal(ctx, userID, notificationID); err != nil {
			return fmt.Errorf("%w: dismiss notification: %v", utils.ErrDatabaseError, err)
		}
		return nil
	}

	if *notification.UserID != userID {
		return fmt.Errorf("%w: notification belongs to another user", utils.ErrForbidden)
	}
	if err := n.notifications.DeleteOwned(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("%w: delete notification: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (n *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	globalIDs, err := n.notifications.ListUndismissedGlobalIDs(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	for _, id := range globalIDs {
		if err := n.notifications.InsertDismissal(ctx, userID, id); err != nil {
			return fmt.Errorf("%w: dismiss notification %s: %v", utils.ErrDatabaseError, id, err)
		}
	}
	if err := n.notifications.DeleteAllOwned(ctx, userID); err != nil {
		return fmt.Errorf("%w: delete targeted notifications: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (n *notificationService) DeleteOld(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-notificationRetention)
	deleted, err := n.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: retention sweep: %v", utils.ErrDatabaseError, err)
	}
	return deleted, nil
}

func toNotificationResponse(notification *db_models.Notification) response_models.NotificationResponse {
	return response_models.NotificationResponse{
		NotificationID: notification.NotificationID,
		UserID:         notification.UserID,
		Type:           notification.Type,
		Title:          notification.Title,
		Message:        notification.Message,
		ReferenceID:    notification.ReferenceID,
		Meta:           notification.Meta,
		CreatedAt:      notification.CreatedAt,
		UpdatedAt:      notification.UpdatedAt,
	}
}
