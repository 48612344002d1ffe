package request_models

type VerifyPaymentRequest struct {
	UserID            string `json:"userId" binding:"required"`
	Type              string `json:"type" binding:"required"`
	PlanType          string `json:"planType" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type CreateOrderRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"` // rupees for INR, converted to paise server side
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
