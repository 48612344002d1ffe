package request_models

type VerifyResourcePurchaseRequest struct {
	UserID            string `json:"userId" binding:"required"`
	ResourceID        string `json:"resourceId" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type VerifyKitPurchaseRequest struct {
	UserID            string `json:"userId" binding:"required"`
	KitID             string `json:"kitId" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
