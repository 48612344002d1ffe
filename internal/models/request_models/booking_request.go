package request_models

type VerifyServiceBookingRequest struct {
	UserID            string `json:"userId" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	PhoneNumber       string `json:"phoneNumber"`
	State             string `json:"state"`
	Language          string `json:"language"`
	ResumeURL         string `json:"resumeURL"`
	ServiceNeeded     string `json:"serviceNeeded" binding:"required"`
	SlotDate          string `json:"slotDate"`
	SlotTime          string `json:"slotTime"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
