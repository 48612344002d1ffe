package db_models

import (
	"gorm.io/datatypes"
)

// ServiceBooking records a paid service-slot booking. Upserted by the gateway
// payment id so a retried verification lands on the same row.
type ServiceBooking struct {
	BaseModel
	UserID        string `gorm:"type:varchar(24);index;not null"`
	Name          string `gorm:"size:100"`
	Email         string `gorm:"size:255"`
	PhoneNumber   string `gorm:"size:20"`
	State         string `gorm:"size:100"`
	Language      string `gorm:"size:50"`
	ResumeURL     string `gorm:"size:1024"`
	ServiceNeeded string `gorm:"size:255;not null"`
	SlotDate      string `gorm:"size:50"`
	SlotTime      string `gorm:"size:50"`

	RazorpayPaymentID string `gorm:"size:64;uniqueIndex;not null"`
	RazorpayOrderID   string `gorm:"size:64"`
	RazorpaySignature string `gorm:"size:128"`

	PaymentVerified bool           `gorm:"default:false"`
	RawResponse     datatypes.JSON `gorm:"type:jsonb"`
}

func (ServiceBooking) TableName() string { return "service_bookings" }
