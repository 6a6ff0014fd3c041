package api

import (
	"context"
	"net/url"
	"time"
)

// LoginToken is a quick-login code waiting to be approved from a signed-in device
type LoginToken struct {
	Code           string    `json:"code"`
	Status         string    `json:"status"`
	PrivateKey     string    `json:"privateKey"`
	ExpirationTime time.Time `json:"expirationTime"`
}

// QRCodeURL returns the image URL of the code's QR rendering
func (t LoginToken) QRCodeURL(c *Client) string {
	values := url.Values{}
	values.Set("key", t.PrivateKey)
	values.Set("code", t.Code)
	return c.endpoint("apis", withQuery("/auth-token-service/v1/login/qr-code-image", values))
}

// LoginCodeInfo describes the device that created a quick-login code
type LoginCodeInfo struct {
	Location   string `json:"location"`
	DeviceInfo string `json:"deviceInfo"`
}

// CreateLoginToken starts a quick-login flow for a device with no session
func (c *Client) CreateLoginToken(ctx context.Context) (LoginToken, error) {
	var token LoginToken
	err := c.post(ctx, "apis", "/auth-token-service/v1/login/create", struct{}{}, &token)
	return token, err
}

// InspectLoginCode returns where a quick-login code was created
// The session must be authenticated
func (c *Client) InspectLoginCode(ctx context.Context, code string) (LoginCodeInfo, error) {
	var info LoginCodeInfo
	err := c.post(ctx, "apis", "/auth-token-service/v1/login/enterCode", map[string]string{"code": code}, &info)
	return info, err
}

// ValidateLoginCode approves a quick-login code, signing the other device in
func (c *Client) ValidateLoginCode(ctx context.Context, code string) error {
	return c.post(ctx, "apis", "/auth-token-service/v1/login/validateCode", map[string]string{"code": code}, nil)
}

// LoginTokenStatus polls the state of a quick-login code
func (c *Client) LoginTokenStatus(ctx context.Context, token LoginToken) (LoginToken, error) {
	body := map[string]string{"code": token.Code, "privateKey": token.PrivateKey}
	var status LoginToken
	if err := c.post(ctx, "apis", "/auth-token-service/v1/login/status", body, &status); err != nil {
		return LoginToken{}, err
	}
	if status.Code == "" {
		status.Code = token.Code
	}
	if status.PrivateKey == "" {
		status.PrivateKey = token.PrivateKey
	}
	return status, nil
}
