package resortapi

import (
	"context"
	"fmt"
)

const (
	pathCreateUser = "/api/user/create/"
	pathToken      = "/api/user/token/"
)

// CreateUser registers a new account. The token is only set when the API
// issues one together with the account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest, csrfToken string) (*CreatedUser, error) {
	resp, err := c.post(ctx, pathCreateUser, req, csrfHeaders(csrfToken))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}

	var user CreatedUser
	if err := resp.DecodeJSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ObtainToken exchanges credentials for an auth token.
func (c *Client) ObtainToken(ctx context.Context, req TokenRequest, csrfToken string) (string, error) {
	resp, err := c.post(ctx, pathToken, req, csrfHeaders(csrfToken))
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", newAPIError(resp)
	}

	var out tokenResponse
	if err := resp.DecodeJSON(&out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("token endpoint returned no token: %w", ErrUnexpectedFormat)
	}
	return out.Token, nil
}
