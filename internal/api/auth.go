package api

import (
	"context"
	"net/http"
	"net/url"
)

// Credentials are the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation request body.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if creds.Email == "" {
		return "", ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if creds.Password == "" {
		return "", ValidationError{Field: "password", Reason: "must not be empty"}
	}
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, c.url("users", "login"), creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. The server sends a verification
// email; the account is usable after VerifyEmail.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	if reg.Email == "" {
		return ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if reg.Password == "" {
		return ValidationError{Field: "password", Reason: "must not be empty"}
	}
	return c.doJSON(ctx, http.MethodPost, c.url("users", "register"), reg, nil)
}

// VerifyEmail confirms an address with the token from the mail link.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	u := c.url("users", "verify-email") + "?token=" + url.QueryEscape(token)
	return c.doJSON(ctx, http.MethodGet, u, nil, nil)
}

// ForgotPassword asks the server to send a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ValidationError{Field: "email", Reason: "must not be empty"}
	}
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, c.url("users", "forgot-password"), body, nil)
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	if password == "" {
		return ValidationError{Field: "password", Reason: "must not be empty"}
	}
	body := map[string]string{"token": token, "password": password}
	return c.doJSON(ctx, http.MethodPost, c.url("users", "reset-password"), body, nil)
}
