package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

func newPaymentService(t *testing.T, db *gorm.DB, gateway *fakeGateway) PaymentServiceInterface {
	t.Helper()
	return NewPaymentService(
		testRazorpayConfig,
		gateway,
		repositories.NewPaymentRepository(db),
		repositories.NewUserDetailsRepository(db),
		repositories.NewGrantRepository(db),
	)
}

func validVerifyRequest(userID string) request_models.VerifyPaymentRequest {
	orderID := "order_123"
	paymentID := "pay_123"
	return request_models.VerifyPaymentRequest{
		UserID:            userID,
		Type:              "Subscription",
		PlanType:          "standard",
		RazorpayPaymentID: paymentID,
		RazorpayOrderID:   orderID,
		RazorpaySignature: razorpaySignature(orderID, paymentID, testRazorpayConfig.KeySecret),
	}
}

func TestVerifyPaymentActivatesPlan(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "captured"}
	svc := newPaymentService(t, db, gateway)
	ctx := context.Background()

	resp, err := svc.VerifyPayment(ctx, validVerifyRequest("user_1"), Actor{UserID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, "standard", resp.PlanType)
	assert.Equal(t, 1, gateway.calls())

	var details db_models.UserDetails
	require.NoError(t, db.First(&details, "user_id = ?", "user_1").Error)
	assert.Equal(t, "standard", details.PlanType)
	assert.Equal(t, "standard", details.UserType)
	assert.Equal(t, details.PlanType, details.UserType)
}

func TestVerifyPaymentIdempotent(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "captured"}
	svc := newPaymentService(t, db, gateway)
	ctx := context.Background()
	actor := Actor{UserID: "user_1", Role: "user"}

	_, err := svc.VerifyPayment(ctx, validVerifyRequest("user_1"), actor)
	require.NoError(t, err)
	_, err = svc.VerifyPayment(ctx, validVerifyRequest("user_1"), actor)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "captured"}
	svc := newPaymentService(t, db, gateway)

	req := validVerifyRequest("user_1")
	req.RazorpaySignature = "forged"

	_, err := svc.VerifyPayment(context.Background(), req, Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)
	assert.Equal(t, 0, gateway.calls(), "rejected signature must not reach the gateway")

	var count int64
	require.NoError(t, db.Model(&db_models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVerifyPaymentRejectsFailedStatus(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "failed"}
	svc := newPaymentService(t, db, gateway)

	_, err := svc.VerifyPayment(context.Background(), validVerifyRequest("user_1"), Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrPaymentNotAcceptable)

	var count int64
	require.NoError(t, db.Model(&db_models.Payment{}).Count(&count).Error)
	assert.Zero(t, count, "unacceptable status must not persist a payment")
}

func TestVerifyPaymentForbiddenForOtherUser(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{}
	svc := newPaymentService(t, db, gateway)

	_, err := svc.VerifyPayment(context.Background(), validVerifyRequest("user_1"), Actor{UserID: "user_2", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t, 0, gateway.calls())
}

func TestVerifyPaymentAdminMayActForAnyUser(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, &fakeGateway{status: "authorized"})

	resp, err := svc.VerifyPayment(context.Background(), validVerifyRequest("user_1"), Actor{UserID: "admin_1", Role: "admin"})
	require.NoError(t, err)
	assert.True(t, resp.Verified)
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, &fakeGateway{})

	req := validVerifyRequest("user_1")
	req.RazorpayOrderID = ""

	_, err := svc.VerifyPayment(context.Background(), req, Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestVerifyPaymentMisconfiguredKeys(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		RazorpayConfig{},
		&fakeGateway{},
		repositories.NewPaymentRepository(db),
		repositories.NewUserDetailsRepository(db),
		repositories.NewGrantRepository(db),
	)

	_, err := svc.VerifyPayment(context.Background(), validVerifyRequest("user_1"), Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrMisconfigured)
}

func TestVerifyPaymentGatewayUnavailable(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{err: utils.ErrUpstreamUnavailable}
	svc := newPaymentService(t, db, gateway)

	_, err := svc.VerifyPayment(context.Background(), validVerifyRequest("user_1"), Actor{UserID: "user_1", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrUpstreamUnavailable)

	var count int64
	require.NoError(t, db.Model(&db_models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderConvertsINRToPaise(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, &fakeGateway{})

	resp, err := svc.CreateOrder(context.Background(), request_models.CreateOrderRequest{Amount: 499})
	require.NoError(t, err)
	assert.Equal(t, int64(49900), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, "order_fake", resp.OrderID)
}

func TestGetUserSubscriptionsMergesGrants(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{status: "captured"}
	svc := newPaymentService(t, db, gateway)
	ctx := context.Background()
	actor := Actor{UserID: "user_1", Role: "user"}

	_, err := svc.VerifyPayment(ctx, validVerifyRequest("user_1"), actor)
	require.NoError(t, err)

	kit := db_models.InterviewKit{KitName: "Backend Kit", KitURL: "https://cdn.example/kit.pdf", Published: true}
	require.NoError(t, db.Create(&kit).Error)
	grants := repositories.NewGrantRepository(db)
	_, err = grants.UpsertKitGrant(ctx, "user_1", kit.KitID, kit.KitURL)
	require.NoError(t, err)

	resp, err := svc.GetUserSubscriptions(ctx, "user_1", actor)
	require.NoError(t, err)
	assert.Equal(t, "standard", resp.CurrentPlanType)
	require.Len(t, resp.Subscriptions, 2)

	_, err = svc.GetUserSubscriptions(ctx, "user_1", Actor{UserID: "user_2", Role: "user"})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
