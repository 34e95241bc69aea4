package regon

import (
	"context"

	"github.com/sirosfoundation/go-regon/pkg/bir"
)

// signUp opens a new session. Sessions are never reused between calls.
func (c *Client) signUp(ctx context.Context) (string, error) {
	resp, err := c.service.Login(ctx, &bir.LoginRequest{ClientKey: c.clientKey})
	if err != nil {
		c.logger.Debug("login failed")
		return "", serviceFailure(err)
	}
	if resp.SessionID == "" {
		return "", &ServiceError{Message: "login returned an empty session id"}
	}

	c.logger.Debug("session opened")
	return resp.SessionID, nil
}
