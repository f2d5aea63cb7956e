package backend

import (
	"context"
	"net/http"
)

// Backend auth endpoints.
const (
	PathOTPRequest = "/auth/otp/request"
	PathOTPVerify  = "/auth/otp/verify"
)

type otpRequestIn struct {
	Email string `json:"email"`
}

type otpVerifyIn struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// OTPRequested is the backend's answer to a successful OTP request.
type OTPRequested struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// OTPVerified is the backend's answer to a successful OTP verification.
type OTPVerified struct {
	Verified    bool   `json:"verified"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RequestOTP asks the backend to email a one-time code to the address.
func (c *Client) RequestOTP(ctx context.Context, email string) (*OTPRequested, error) {
	var out OTPRequested
	if err := c.sendJSON(ctx, http.MethodPost, PathOTPRequest, otpRequestIn{Email: email}, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP exchanges an emailed code for an access token.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*OTPVerified, error) {
	var out OTPVerified
	if err := c.sendJSON(ctx, http.MethodPost, PathOTPVerify, otpVerifyIn{Email: email, OTP: otp}, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
