package infra

import (
	"context"
	"errors"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
	rzperrors "github.com/razorpay/razorpay-go/errors"

	"offcampus/pkg/utils"
)

// gatewayTimeoutSeconds bounds every Razorpay round trip. A timeout surfaces
// as ErrUpstreamUnavailable and the caller may retry the whole operation.
const gatewayTimeoutSeconds = 10

type GatewayPayment struct {
	ID     string
	Status string
	Raw    map[string]interface{}
}

type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// PaymentGateway is the upstream payment provider. Kept as an interface so
// the verification flow can be tested with a counting fake.
type PaymentGateway interface {
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)
	KeyID() string
}

type razorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

// NewRazorpayGatewayFromEnv builds the gateway from RAZORPAY_KEY_ID /
// RAZORPAY_KEY_SECRET. With the keys absent the gateway still constructs, but
// every call reports ErrMisconfigured so the endpoint degrades to a clean 500.
func NewRazorpayGatewayFromEnv() PaymentGateway {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return &razorpayGateway{}
	}

	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(gatewayTimeoutSeconds)
	return &razorpayGateway{client: client, keyID: keyID}
}

func (g *razorpayGateway) KeyID() string { return g.keyID }

func (g *razorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	if g.client == nil {
		return nil, utils.ErrMisconfigured
	}

	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		var badRequest *rzperrors.BadRequestError
		if errors.As(err, &badRequest) {
			// Razorpay answers BAD_REQUEST_ERROR for unknown payment ids.
			return nil, utils.ErrPaymentNotFound
		}
		return nil, utils.ErrUpstreamUnavailable
	}

	payment := &GatewayPayment{Raw: body}
	if id, ok := body["id"].(string); ok {
		payment.ID = id
	}
	if status, ok := body["status"].(string); ok {
		payment.Status = status
	}
	return payment, nil
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	if g.client == nil {
		return nil, utils.ErrMisconfigured
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, utils.ErrUpstreamUnavailable
	}

	order := &GatewayOrder{Currency: currency}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	switch v := body["amount"].(type) {
	case float64:
		order.Amount = int64(v)
	case int64:
		order.Amount = v
	}
	return order, nil
}
