package api

import (
	"context"
	"net/http"

	"github.com/avolkov/chargecli/internal/client/models"
)

// AuthResponse is the successful login/verification payload.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterResult is the outcome of a registration call.
//
// NeedsVerification is true only for ordinary users: the backend requires
// email verification before their first login, admins log in right away.
type RegisterResult struct {
	Message           string      `json:"message"`
	User              models.User `json:"user"`
	NeedsVerification bool        `json:"-"`
}

// Login authenticates with email and password. asAdmin selects the admin
// login resource, which is distinct from the user one.
func (c *Client) Login(ctx context.Context, email, password string, asAdmin bool) (*AuthResponse, error) {
	endpoint := "/users/login"
	if asAdmin {
		endpoint = "/admins/login"
	}

	var resp AuthResponse
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, endpoint, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. It does not authenticate the session.
func (c *Client) Register(ctx context.Context, reg models.Registration, asAdmin bool) (*RegisterResult, error) {
	endpoint := "/users/register"
	if asAdmin {
		endpoint = "/admins/register"
	}

	var resp RegisterResult
	if err := c.do(ctx, http.MethodPost, endpoint, reg, &resp); err != nil {
		return nil, err
	}
	resp.NeedsVerification = !asAdmin
	return &resp, nil
}

// VerifyGoogleCredential exchanges a provider-issued credential for a
// backend session.
func (c *Client) VerifyGoogleCredential(ctx context.Context, token string) (*AuthResponse, error) {
	var resp AuthResponse
	payload := map[string]string{"token": token}
	if err := c.do(ctx, http.MethodPost, "/users/google/verify", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleEntryURL is the browser-navigation entry point of the redirect
// OAuth flow. It is not an XHR endpoint; callers direct the user agent there.
func (c *Client) GoogleEntryURL() string {
	return c.baseURL + "/users/google"
}

// RequestPasswordReset asks the backend to email a reset OTP.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var resp messageBody
	payload := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/users/reset-password", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ConfirmPasswordReset submits the OTP and the new password.
func (c *Client) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) (string, error) {
	var resp messageBody
	payload := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	if err := c.do(ctx, http.MethodPost, "/users/reset-password/confirm", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyEmail redeems the emailed verification token for a freshly
// registered account.
func (c *Client) VerifyEmail(ctx context.Context, token string) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodGet, "/users/verify/"+token, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
