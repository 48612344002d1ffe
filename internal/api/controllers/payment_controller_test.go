package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offcampus/internal/models/request_models"
	"offcampus/internal/models/response_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type stubPaymentService struct {
	verifyResp *response_models.VerifyPaymentResponse
	verifyErr  error
}

func (s *stubPaymentService) VerifyPayment(ctx context.Context, req request_models.VerifyPaymentRequest, actor services.Actor) (*response_models.VerifyPaymentResponse, error) {
	return s.verifyResp, s.verifyErr
}

func (s *stubPaymentService) CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	return nil, nil
}

func (s *stubPaymentService) CheckoutKeyID() (string, error) { return "rzp_test_key", nil }

func (s *stubPaymentService) GetUserSubscriptions(ctx context.Context, userID string, actor services.Actor) (*response_models.UserSubscriptionsResponse, error) {
	return nil, nil
}

func (s *stubPaymentService) GetAllSubscriptions(ctx context.Context) ([]response_models.SubscriptionEntry, error) {
	return nil, nil
}

func verifyRouter(svc services.PaymentServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPaymentController(svc)
	r.POST("/payments/verify", func(c *gin.Context) {
		c.Set("user_id", "user_1")
		c.Set("role", "user")
	}, controller.VerifyPayment)
	return r
}

func postVerify(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func verifyBody() request_models.VerifyPaymentRequest {
	return request_models.VerifyPaymentRequest{
		UserID:            "user_1",
		Type:              "Subscription",
		PlanType:          "standard",
		RazorpayPaymentID: "pay_1",
		RazorpayOrderID:   "order_1",
		RazorpaySignature: "sig",
	}
}

func TestVerifyPaymentEndpointSuccessEnvelope(t *testing.T) {
	r := verifyRouter(&stubPaymentService{
		verifyResp: &response_models.VerifyPaymentResponse{Verified: true, PlanType: "standard"},
	})

	w := postVerify(t, r, verifyBody())
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, http.StatusOK, envelope.Code)
	assert.NotNil(t, envelope.Data)
}

func TestVerifyPaymentEndpointRejectsMissingFields(t *testing.T) {
	r := verifyRouter(&stubPaymentService{})

	body := verifyBody()
	body.RazorpaySignature = ""
	w := postVerify(t, r, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPaymentEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid signature", utils.ErrInvalidSignature, http.StatusBadRequest},
		{"forbidden", utils.ErrForbidden, http.StatusForbidden},
		{"payment not found upstream", utils.ErrPaymentNotFound, http.StatusNotFound},
		{"gateway down", utils.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"missing keys", utils.ErrMisconfigured, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := verifyRouter(&stubPaymentService{verifyErr: tc.err})
			w := postVerify(t, r, verifyBody())
			assert.Equal(t, tc.code, w.Code)

			var envelope utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, "error", envelope.Status)
		})
	}
}
