package response_models

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type VerifyOTPResponse struct {
	UserID        string `json:"userId"`
	ResetPassword bool   `json:"resetPassword"`
}
