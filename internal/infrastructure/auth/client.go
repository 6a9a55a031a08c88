package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resty.dev/v3"
)

// ErrEmailTaken is returned when the auth service already holds an account
// for the email.
var ErrEmailTaken = errors.New("email already registered")

// Client talks to the managed auth service's admin API using the service
// role key. Only account provisioning is needed here; sessions and token
// refresh stay on the frontend.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(serviceKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &Client{http: httpClient}
}

func (c *Client) Close() error {
	return c.http.Close()
}

type createAccountRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

type createAccountResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	Message string `json:"msg"`
}

// CreateAccount provisions a login and returns the auth-side account id.
func (c *Client) CreateAccount(ctx context.Context, email, password string) (string, error) {
	var (
		out    createAccountResponse
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createAccountRequest{Email: email, Password: password, EmailConfirm: true}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/admin/users")
	if err != nil {
		return "", fmt.Errorf("auth request: %w", err)
	}

	if resp.IsError() {
		if resp.StatusCode() == 409 || resp.StatusCode() == 422 {
			return "", ErrEmailTaken
		}
		if apiErr.Message != "" {
			return "", fmt.Errorf("auth service: %s", apiErr.Message)
		}
		return "", fmt.Errorf("auth service: unexpected status %d", resp.StatusCode())
	}

	if out.ID == "" {
		return "", errors.New("auth service: response missing account id")
	}
	return out.ID, nil
}
