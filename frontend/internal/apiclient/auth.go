package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/boardkit-dev/boardkit/shared/api"
)

// === Auth Methods ===

// Signup creates an account and stores the issued access token on the client.
func (c *APIClient) Signup(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/v1/auth/signup", http.StatusCreated, api.SignupRequest{Email: email, Password: password})
}

// Login authenticates and stores the issued access token on the client.
func (c *APIClient) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/v1/auth/login", http.StatusOK, api.LoginRequest{Email: email, Password: password})
}

func (c *APIClient) authenticate(ctx context.Context, path string, wantStatus int, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	resp, err := c.do(ctx, "POST", path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "accessToken" {
			c.Token = cookie.Value
		}
	}
	return nil
}
