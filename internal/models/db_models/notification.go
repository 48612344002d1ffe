package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"offcampus/pkg/utils"
)

const (
	NotificationTypeNewJob        = "new_job"
	NotificationTypeNewInternship = "new_internship"
	NotificationTypeNewService    = "new_service"
)

// Notification is either targeted (user_id set) or global (user_id NULL).
// A global row is shared by every user: it is never mutated on read, and
// per-user dismissal lives in user_dismissed_notifications instead.
type Notification struct {
	NotificationID string  `gorm:"type:varchar(24);primaryKey;column:notification_id"`
	UserID         *string `gorm:"type:varchar(24);index"`
	Type           string  `gorm:"size:50;not null"`
	Title          string  `gorm:"size:255;not null"`
	Message        string
	ReferenceID    string         `gorm:"type:varchar(24)"`
	Meta           datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt int64 `gorm:"autoCreateTime;index"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.NotificationID == "" {
		n.NotificationID = utils.GenerateID(utils.DefaultIDLength)
	}
	now := time.Now().Unix()
	n.CreatedAt = now
	n.UpdatedAt = now
	return nil
}

// IsGlobal reports whether the notification broadcasts to all users.
func (n *Notification) IsGlobal() bool { return n.UserID == nil }

// DismissedNotification marks that one user dismissed one global notification.
// The shared notification row stays; other users keep seeing it.
type DismissedNotification struct {
	UserID         string `gorm:"type:varchar(24);primaryKey"`
	NotificationID string `gorm:"type:varchar(24);primaryKey"`
	DismissedAt    int64  `gorm:"autoCreateTime"`
}

func (DismissedNotification) TableName() string { return "user_dismissed_notifications" }
