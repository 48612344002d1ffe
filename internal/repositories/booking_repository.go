package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offcampus/internal/models/db_models"
)

type BookingRepositoryInterface interface {
	// UpsertByPaymentID keys the booking on the gateway payment id so a
	// retried verification updates the original row.
	UpsertByPaymentID(ctx context.Context, booking *db_models.ServiceBooking) (*db_models.ServiceBooking, error)
	ListAll(ctx context.Context) ([]db_models.ServiceBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepositoryInterface {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) UpsertByPaymentID(ctx context.Context, booking *db_models.ServiceBooking) (*db_models.ServiceBooking, error) {
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "razorpay_payment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "name", "email", "phone_number", "state", "language",
			"resume_url", "service_needed", "slot_date", "slot_time",
			"razorpay_order_id", "razorpay_signature",
			"payment_verified", "raw_response", "updated_at",
		}),
	}).Create(booking).Error
	if err != nil {
		return nil, err
	}

	var saved db_models.ServiceBooking
	err = b.db.WithContext(ctx).
		First(&saved, "razorpay_payment_id = ?", booking.RazorpayPaymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &saved, nil
}

func (b *bookingRepository) ListAll(ctx context.Context) ([]db_models.ServiceBooking, error) {
	var bookings []db_models.ServiceBooking
	err := b.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}
