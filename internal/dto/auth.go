package dto

import "time"

// OfficerLoginRequest defines the password sign-in payload.
type OfficerLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RequestOTPRequest asks for a one-time code to be sent to a mobile number.
type RequestOTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required,indianmobile"`
}

// VerifyOTPRequest exchanges a delivered code for a token.
type VerifyOTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required,indianmobile"`
	Code         string `json:"code" binding:"required,len=6,numeric"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
