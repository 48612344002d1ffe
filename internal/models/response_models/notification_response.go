package response_models

import "gorm.io/datatypes"

type NotificationResponse struct {
	NotificationID string         `json:"notificationId"`
	UserID         *string        `json:"userId"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message,omitempty"`
	ReferenceID    string         `json:"referenceId,omitempty"`
	Meta           datatypes.JSON `json:"meta,omitempty"`
	CreatedAt      int64          `json:"createdAt"`
	UpdatedAt      int64          `json:"updatedAt"`
}

type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Count int                    `json:"count"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
