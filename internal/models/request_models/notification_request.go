package request_models

import "gorm.io/datatypes"

type CreateNotificationRequest struct {
	UserID      string         `json:"userId"` // empty means global
	Type        string         `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Message     string         `json:"message"`
	ReferenceID string         `json:"referenceId"`
	Meta        datatypes.JSON `json:"meta"`
}

type CreateGlobalNotificationRequest struct {
	Type        string         `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Message     string         `json:"message"`
	ReferenceID string         `json:"referenceId"`
	Meta        datatypes.JSON `json:"meta"`
}
