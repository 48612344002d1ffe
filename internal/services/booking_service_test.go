package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

func bookingRequest(userID string) request_models.VerifyServiceBookingRequest {
	orderID := "order_book_1"
	paymentID := "pay_book_1"
	return request_models.VerifyServiceBookingRequest{
		UserID:            userID,
		Name:              "Asha",
		Email:             "asha@example.com",
		PhoneNumber:       "9999999999",
		State:             "Karnataka",
		Language:          "English",
		ServiceNeeded:     "Mock Interview",
		SlotDate:          "2026-09-10",
		SlotTime:          "18:00",
		RazorpayPaymentID: paymentID,
		RazorpayOrderID:   orderID,
		RazorpaySignature: razorpaySignature(orderID, paymentID, testRazorpayConfig.KeySecret),
	}
}

func TestVerifyBookingConfirmsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "captured"}
	mail := &fakeMail{}
	svc := NewBookingService(testRazorpayConfig, gateway, repositories.NewBookingRepository(db), mail)
	ctx := context.Background()

	booking, err := svc.VerifyBooking(ctx, bookingRequest("user_1"), Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.True(t, booking.PaymentVerified)
	assert.NotEmpty(t, booking.ServiceID)
	assert.Equal(t, 1, gateway.calls(), "bookings always confirm the payment upstream")

	assert.Eventually(t, func() bool {
		mail.mu.Lock()
		defer mail.mu.Unlock()
		return len(mail.confirmations) == 1 && len(mail.alerts) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestVerifyBookingIdempotentByPaymentID(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(testRazorpayConfig, &fakeGateway{status: "captured"}, repositories.NewBookingRepository(db), &fakeMail{})
	ctx := context.Background()
	actor := Actor{UserID: "user_1", Role: "user"}

	first, err := svc.VerifyBooking(ctx, bookingRequest("user_1"), actor)
	require.NoError(t, err)

	retry := bookingRequest("user_1")
	retry.SlotTime = "19:00"
	second, err := svc.VerifyBooking(ctx, retry, actor)
	require.NoError(t, err)

	assert.Equal(t, first.ServiceID, second.ServiceID, "a retried verification lands on the same row")
	assert.Equal(t, "19:00", second.SlotTime)

	var count int64
	require.NoError(t, db.Model(&db_models.ServiceBooking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyBookingRejections(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "failed"}
	svc := NewBookingService(testRazorpayConfig, gateway, repositories.NewBookingRepository(db), &fakeMail{})
	ctx := context.Background()

	_, err := svc.VerifyBooking(ctx, bookingRequest("user_1"), Actor{UserID: "user_2", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	forged := bookingRequest("user_1")
	forged.RazorpaySignature = "forged"
	_, err = svc.VerifyBooking(ctx, forged, Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)
	assert.Equal(t, 0, gateway.calls())

	_, err = svc.VerifyBooking(ctx, bookingRequest("user_1"), Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrPaymentNotAcceptable)

	var count int64
	require.NoError(t, db.Model(&db_models.ServiceBooking{}).Count(&count).Error)
	assert.Zero(t, count)
}
