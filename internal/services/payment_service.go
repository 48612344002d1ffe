package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"offcampus/internal/infra"
	"offcampus/internal/models/db_models"
	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/repositories"
	"offcampus/pkg/utils"
)

// RazorpayConfig carries the server-held gateway credentials. KeySecret signs
// checkout payloads and therefore never leaves the server.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// Actor identifies the authenticated caller for authorization decisions.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

type PaymentServiceInterface interface {
	VerifyPayment(ctx context.Context, req request_models.VerifyPaymentRequest, actor Actor) (*response_models.VerifyPaymentResponse, error)
	CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error)
	CheckoutKeyID() (string, error)
	GetUserSubscriptions(ctx context.Context, userID string, actor Actor) (*response_models.UserSubscriptionsResponse, error)
	GetAllSubscriptions(ctx context.Context) ([]response_models.SubscriptionEntry, error)
}

type paymentService struct {
	cfg         RazorpayConfig
	gateway     infra.PaymentGateway
	payments    repositories.PaymentRepositoryInterface
	userDetails repositories.UserDetailsRepositoryInterface
	grants      repositories.GrantRepositoryInterface
}

func NewPaymentService(
	cfg RazorpayConfig,
	gateway infra.PaymentGateway,
	payments repositories.PaymentRepositoryInterface,
	userDetails repositories.UserDetailsRepositoryInterface,
	grants repositories.GrantRepositoryInterface,
) PaymentServiceInterface {
	return &paymentService{
		cfg:         cfg,
		gateway:     gateway,
		payments:    payments,
		userDetails: userDetails,
		grants:      grants,
	}
}

// razorpaySignature recomputes the checkout signature: HMAC-SHA256 over
// "<order_id>|<payment_id>" with the key secret, hex encoded.
func razorpaySignature(orderID, paymentID, keySecret string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func signatureMatches(orderID, paymentID, got, keySecret string) bool {
	expected := razorpaySignature(orderID, paymentID, keySecret)
	return hmac.Equal([]byte(expected), []byte(got))
}

// acceptableStatuses are the gateway payment states treated as money received.
var acceptableStatuses = map[string]bool{
	"captured":   true,
	"authorized": true,
}

// VerifyPayment turns the client's claim of a completed checkout into a
// durable entitlement. Ordering matters: the local signature check runs
// before any network call, so a forged request costs no gateway round trip
// and cannot probe the gateway through this endpoint. Nothing is written
// until both the signature and the gateway status have passed.
func (p *paymentService) VerifyPayment(ctx context.Context, req request_models.VerifyPaymentRequest, actor Actor) (*response_models.VerifyPaymentResponse, error) {
	if req.UserID == "" || req.Type == "" || req.PlanType == "" ||
		req.RazorpayPaymentID == "" || req.RazorpayOrderID == "" || req.RazorpaySignature == "" {
		return nil, fmt.Errorf("%w: userId, type, planType, razorpay_payment_id, razorpay_order_id, razorpay_signature are required", utils.ErrValidation)
	}
	if !actor.IsAdmin() && actor.UserID != req.UserID {
		return nil, fmt.Errorf("%w: cannot verify payment for another user", utils.ErrForbidden)
	}
	if p.cfg.KeyID == "" || p.cfg.KeySecret == "" {
		return nil, fmt.Errorf("%w: razorpay keys missing", utils.ErrMisconfigured)
	}

	if !signatureMatches(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, p.cfg.KeySecret) {
		return nil, utils.ErrInvalidSignature
	}

	gatewayPayment, err := p.gateway.FetchPayment(ctx, req.RazorpayPaymentID)
	if err != nil {
		return nil, err
	}
	if gatewayPayment.Status != "" && !acceptableStatuses[gatewayPayment.Status] {
		return nil, fmt.Errorf("%w: %s", utils.ErrPaymentNotAcceptable, gatewayPayment.Status)
	}

	rawResponse, err := json.Marshal(gatewayPayment.Raw)
	if err != nil {
		rawResponse = nil
	}

	payment := &db_models.Payment{
		UserID:            req.UserID,
		Type:              req.Type,
		PlanType:          req.PlanType,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpaySignature: req.RazorpaySignature,
		Verified:          true,
		RawResponse:       rawResponse,
	}
	if err := p.payments.UpsertByPaymentID(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: upsert payment: %v", utils.ErrDatabaseError, err)
	}
	saved, err := p.payments.GetByPaymentID(ctx, req.RazorpayPaymentID)
	if err != nil || saved == nil {
		return nil, fmt.Errorf("%w: reload payment: %v", utils.ErrDatabaseError, err)
	}

	// Entitlement write is best-effort relative to the committed payment row:
	// a failure here surfaces to the caller but does not roll the payment
	// back. An operator can re-sync plans from the payments table.
	planType := req.PlanType
	if err := p.userDetails.EnsureDefault(ctx, req.UserID); err != nil {
		log.Printf("ensure user_details for %s: %v", req.UserID, err)
	}
	details, err := p.userDetails.SetPlan(ctx, req.UserID, req.PlanType)
	if err != nil {
		return nil, fmt.Errorf("%w: payment recorded but plan update failed: %v", utils.ErrDatabaseError, err)
	}
	if details != nil {
		planType = details.PlanType
	}

	return &response_models.VerifyPaymentResponse{
		Verified: true,
		Payment:  toPaymentResponse(saved),
		PlanType: planType,
	}, nil
}

func (p *paymentService) CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be > 0", utils.ErrValidation)
	}
	if p.cfg.KeyID == "" || p.cfg.KeySecret == "" {
		return nil, fmt.Errorf("%w: razorpay keys missing", utils.ErrMisconfigured)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "INR"
	}
	amount := req.Amount
	if currency == "INR" {
		// Client sends rupees for INR; the gateway wants paise.
		amount = req.Amount * 100
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + utils.GenerateID(10)
	}

	order, err := p.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return nil, err
	}
	return &response_models.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

func (p *paymentService) CheckoutKeyID() (string, error) {
	if p.cfg.KeyID == "" {
		return "", fmt.Errorf("%w: razorpay key missing", utils.ErrMisconfigured)
	}
	return p.cfg.KeyID, nil
}

func (p *paymentService) GetUserSubscriptions(ctx context.Context, userID string, actor Actor) (*response_models.UserSubscriptionsResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", utils.ErrValidation)
	}
	if !actor.IsAdmin() && actor.UserID != userID {
		return nil, fmt.Errorf("%w: cannot view another user's subscriptions", utils.ErrForbidden)
	}

	details, err := p.userDetails.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	payments, err := p.payments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	kits, err := p.grants.ListKitGrants(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	grants, err := p.grants.ListResourceGrants(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	entries := mergeSubscriptionEntries(payments, kits, grants, false)

	resp := &response_models.UserSubscriptionsResponse{
		UserID:        userID,
		Subscriptions: entries,
	}
	if details != nil {
		resp.CurrentPlanType = details.PlanType
		resp.CurrentUserType = details.UserType
	}
	return resp, nil
}

func (p *paymentService) GetAllSubscriptions(ctx context.Context) ([]response_models.SubscriptionEntry, error) {
	payments, err := p.payments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	kits, err := p.grants.ListAllKitGrants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	grants, err := p.grants.ListAllResourceGrants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return mergeSubscriptionEntries(payments, kits, grants, true), nil
}

func mergeSubscriptionEntries(
	payments []db_models.Payment,
	kits []repositories.KitGrantRow,
	grants []repositories.ResourceGrantRow,
	withSource bool,
) []response_models.SubscriptionEntry {
	entries := make([]response_models.SubscriptionEntry, 0, len(payments)+len(kits)+len(grants))

	for _, payment := range payments {
		entry := response_models.SubscriptionEntry{
			ID:        fmt.Sprintf("%d", payment.ID),
			UserID:    payment.UserID,
			Type:      payment.Type,
			PlanType:  payment.PlanType,
			Verified:  payment.Verified,
			CreatedAt: payment.CreatedAt,
			UpdatedAt: payment.UpdatedAt,
		}
		if withSource {
			entry.Source = "payment"
		}
		entries = append(entries, entry)
	}
	for _, kit := range kits {
		entry := response_models.SubscriptionEntry{
			ID:        "kit_" + kit.KitID + "_" + kit.UserID,
			UserID:    kit.UserID,
			Type:      "Interview kit",
			PlanType:  kit.KitName,
			Verified:  true,
			CreatedAt: kit.CreatedAt,
			UpdatedAt: kit.UpdatedAt,
			KitID:     kit.KitID,
			KitURL:    kit.KitURL,
		}
		if withSource {
			entry.Source = "kit"
		}
		entries = append(entries, entry)
	}
	for _, grant := range grants {
		entry := response_models.SubscriptionEntry{
			ID:           "res_" + grant.ResourceID + "_" + grant.UserID,
			UserID:       grant.UserID,
			Type:         "Resource",
			PlanType:     grant.ResourceName,
			Verified:     true,
			CreatedAt:    grant.CreatedAt,
			UpdatedAt:    grant.UpdatedAt,
			ResourceID:   grant.ResourceID,
			DownloadLink: grant.SignedURL,
		}
		if withSource {
			entry.Source = "resource"
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
	return entries
}

func toPaymentResponse(payment *db_models.Payment) response_models.PaymentResponse {
	return response_models.PaymentResponse{
		ID:                payment.ID,
		UserID:            payment.UserID,
		Type:              payment.Type,
		PlanType:          payment.PlanType,
		RazorpayPaymentID: payment.RazorpayPaymentID,
		RazorpayOrderID:   payment.RazorpayOrderID,
		Verified:          payment.Verified,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}
