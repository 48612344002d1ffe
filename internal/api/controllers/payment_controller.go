package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offcampus/internal/models/request_models"
	"offcampus/internal/services"
	"offcampus/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// VerifyPayment godoc
// @Summary Verify a plan checkout and activate the plan
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Checkout result"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.paymentService.VerifyPayment(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment verified")
}

// CreateOrder godoc
// @Summary Create a gateway order for checkout
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order details"
// @Success 200 {object} utils.APIResponse
// @Router /payments/order [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.paymentService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order created")
}

// GetConfig godoc
// @Summary Public checkout configuration
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/config [get]
func (p *PaymentController) GetConfig(c *gin.Context) {
	keyID, err := p.paymentService.CheckoutKeyID()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"keyId": keyID}, "")
}

// GetUserSubscriptions godoc
// @Summary Subscription history for one user
// @Tags Payments
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /payments/subscriptions/{userId} [get]
func (p *PaymentController) GetUserSubscriptions(c *gin.Context) {
	userID := c.Param("userId")

	resp, err := p.paymentService.GetUserSubscriptions(c.Request.Context(), userID, actorFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// GetAllSubscriptions godoc
// @Summary All subscriptions across users
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/subscriptions [get]
func (p *PaymentController) GetAllSubscriptions(c *gin.Context) {
	resp, err := p.paymentService.GetAllSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"subscriptions": resp, "count": len(resp)}, "")
}
