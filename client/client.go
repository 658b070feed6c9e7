// Package client is a typed Go client for the ShareSpace rental management
// API. Login methods capture the session token and attach it to every
// subsequent call.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// APIError is a business rejection returned by the backend, carrying the
// message from its APIResponse envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type apiResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// Token returns the session token captured by the last successful login.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// request builds a resty request with the session token attached when one is
// held.
func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// execute runs the request and converts backend rejections into APIError.
func execute(req *resty.Request, method, path string) error {
	var apiErr apiResponse
	req.SetError(&apiErr)

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		message := apiErr.Message
		if message == "" {
			message = resp.String()
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: message}
	}
	return nil
}

// Logout revokes the current session token on the server and forgets it
// locally.
func (c *Client) Logout(ctx context.Context) error {
	if err := execute(c.request(ctx), resty.MethodPost, "/auth/logout"); err != nil {
		return err
	}
	c.setToken("")
	return nil
}

// OwnerLoginResponse mirrors the owner login endpoint body.
type OwnerLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// OwnerLogin authenticates the owner and stores the session token.
func (c *Client) OwnerLogin(ctx context.Context, req domain.OwnerLoginRequest) (*OwnerLoginResponse, error) {
	var result OwnerLoginResponse
	request := c.request(ctx).SetBody(req).SetResult(&result)
	if err := execute(request, resty.MethodPost, "/owner/login"); err != nil {
		return nil, err
	}
	c.setToken(result.Token)
	return &result, nil
}
