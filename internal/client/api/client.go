package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkuznetsov/todolist/internal/models"
)

// Returned when the server rejects the bearer token (missing, invalid or
// expired): the stored session should be dropped and the user logged in again
var ErrUnauthorized = errors.New("unauthorized")

// APIError keeps the server provided message so the user sees it verbatim
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client is an HTTP client of the todolist REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token sent on protected routes
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var resp User
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req, &resp)
	if err != nil {
		return resp, fmt.Errorf("register request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp)
	if err != nil {
		return resp, fmt.Errorf("login request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (MessageResponse, error) {
	var resp MessageResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/reset-password", req, &resp)
	if err != nil {
		return resp, fmt.Errorf("reset password request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var resp []Todo
	err := c.doRequest(ctx, http.MethodGet, "/api/todos", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list todos request failed: %w", err)
	}

	todos := make([]models.Todo, 0, len(resp))
	for _, t := range resp {
		todos = append(todos, t.Model())
	}
	return todos, nil
}

func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (models.Todo, error) {
	var resp Todo
	err := c.doRequest(ctx, http.MethodPost, "/api/todos", req, &resp)
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request failed: %w", err)
	}
	return resp.Model(), nil
}

func (c *Client) UpdateTodo(ctx context.Context, todoID int64, req UpdateTodoRequest) error {
	var resp MessageResponse
	err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", todoID), req, &resp)
	if err != nil {
		return fmt.Errorf("update todo request failed: %w", err)
	}
	return nil
}

func (c *Client) DeleteTodo(ctx context.Context, todoID int64) (int64, error) {
	var resp DeleteTodoResponse
	err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", todoID), nil, &resp)
	if err != nil {
		return 0, fmt.Errorf("delete todo request failed: %w", err)
	}
	return resp.Changes, nil
}

func (c *Client) doRequest(ctx context.Context, method string, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, serverMessage(resp.Body))
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Extract the server provided message, fall back to a generic one
func serverMessage(body io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return "request rejected"
}
