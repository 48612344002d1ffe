package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offcampus/internal/models/db_models"
)

type PaymentRepositoryInterface interface {
	// UpsertByPaymentID inserts the payment or, when a row for the same
	// razorpay_payment_id exists, overwrites its mutable fields. Single
	// statement, so concurrent retries of the same payment id converge onto
	// one row.
	UpsertByPaymentID(ctx context.Context, payment *db_models.Payment) error
	GetByPaymentID(ctx context.Context, razorpayPaymentID string) (*db_models.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]db_models.Payment, error)
	ListAll(ctx context.Context) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) UpsertByPaymentID(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "razorpay_payment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "type", "plan_type",
			"razorpay_order_id", "razorpay_signature",
			"verified", "raw_response", "updated_at",
		}),
	}).Create(payment).Error
}

func (p *paymentRepository) GetByPaymentID(ctx context.Context, razorpayPaymentID string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := p.db.WithContext(ctx).
		First(&payment, "razorpay_payment_id = ?", razorpayPaymentID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (p *paymentRepository) ListByUserID(ctx context.Context, userID string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (p *paymentRepository) ListAll(ctx context.Context) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
