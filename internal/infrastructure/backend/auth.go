package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login posts form-encoded credentials to the login endpoint for role and
// returns the bearer token.
func (cl *Client) Login(ctx context.Context, role domain.Role, username, password string) (string, error) {
	path := "/login"
	if role == domain.RoleAdmin {
		path = "/admin/login"
	}
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var res tokenResponse
	op := "auth." + string(role) + "_login"
	if err := cl.do(ctx, call{op: op, method: http.MethodPost, path: path, form: form}, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("%s: response carried no access_token", op)
	}
	return res.AccessToken, nil
}

func (cl *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var res messageResponse
	body := map[string]string{"email": email}
	if err := cl.do(ctx, call{op: "auth.forgot_password", method: http.MethodPost, path: "/forgot-password", json: body}, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (cl *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error) {
	var res messageResponse
	body := map[string]string{"email": email, "otp": otp, "new_password": newPassword}
	if err := cl.do(ctx, call{op: "auth.reset_password", method: http.MethodPost, path: "/reset-password", json: body}, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
