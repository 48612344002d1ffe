package db_models

import (
	"gorm.io/datatypes"
)

// Payment records one verified (or attempted) gateway payment. Rows are
// upserted by razorpay_payment_id: a retry for the same gateway payment
// converges onto the same row. Verified flips to true only after both the
// signature check and the gateway status check pass.
type Payment struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	UserID   string `gorm:"type:varchar(24);index;not null"`
	Type     string `gorm:"size:50"`
	PlanType string `gorm:"size:50"`

	RazorpayPaymentID string `gorm:"size:64;uniqueIndex;not null"`
	RazorpayOrderID   string `gorm:"size:64"`
	RazorpaySignature string `gorm:"size:128"`

	Verified    bool           `gorm:"default:false"`
	RawResponse datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
