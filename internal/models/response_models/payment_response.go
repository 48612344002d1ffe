package response_models

import "gorm.io/datatypes"

type PaymentResponse struct {
	ID                uint   `json:"id"`
	UserID            string `json:"userId"`
	Type              string `json:"type"`
	PlanType          string `json:"planType"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	Verified          bool   `json:"verified"`
	CreatedAt         int64  `json:"createdAt"`
	UpdatedAt         int64  `json:"updatedAt"`
}

type VerifyPaymentResponse struct {
	Verified bool            `json:"verified"`
	Payment  PaymentResponse `json:"payment"`
	PlanType string          `json:"planType"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// SubscriptionEntry flattens payments, kit grants and resource grants into one
// history feed.
type SubscriptionEntry struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Type         string `json:"type"`
	PlanType     string `json:"planType"`
	Verified     bool   `json:"verified"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
	KitID        string `json:"kitId,omitempty"`
	KitURL       string `json:"kitUrl,omitempty"`
	ResourceID   string `json:"resourceId,omitempty"`
	DownloadLink string `json:"downloadLink,omitempty"`
	Source       string `json:"source,omitempty"`
}

type UserSubscriptionsResponse struct {
	UserID          string              `json:"userId"`
	CurrentPlanType string              `json:"currentPlanType"`
	CurrentUserType string              `json:"currentUserType"`
	Subscriptions   []SubscriptionEntry `json:"subscriptions"`
}

type GrantResponse struct {
	UserID       string `json:"userId"`
	ResourceID   string `json:"resourceId,omitempty"`
	KitID        string `json:"kitId,omitempty"`
	DownloadLink string `json:"downloadLink,omitempty"`
	KitURL       string `json:"kitUrl,omitempty"`
}

type BookingResponse struct {
	ServiceID       string         `json:"serviceId"`
	UserID          string         `json:"userId"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	PhoneNumber     string         `json:"phoneNumber"`
	State           string         `json:"state"`
	Language        string         `json:"language"`
	ResumeURL       string         `json:"resumeURL"`
	ServiceNeeded   string         `json:"serviceNeeded"`
	SlotDate        string         `json:"slotDate"`
	SlotTime        string         `json:"slotTime"`
	PaymentVerified bool           `json:"paymentVerified"`
	RawResponse     datatypes.JSON `json:"-"`
	CreatedAt       int64          `json:"createdAt"`
	UpdatedAt       int64          `json:"updatedAt"`
}
