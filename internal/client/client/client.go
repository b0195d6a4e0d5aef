// Package client implements the HTTP API client used by the CLI. It keeps
// the bearer token obtained at login for the lifetime of the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Task mirrors the server's task representation.
type Task struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Text     string `json:"text"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Text     string  `json:"text"`
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

type APIClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// HasToken reports whether a login token is held for this session.
func (c *APIClient) HasToken() bool {
	return c.token != ""
}

// do sends one JSON request and decodes the JSON response into out (when
// out is non-nil). Non-2xx responses are turned into errors carrying the
// server's message.
func (c *APIClient) do(ctx context.Context, method string, path string, body any, out any) error {

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg messageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			return fmt.Errorf("server: %s", msg.Message)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *APIClient) Register(ctx context.Context, username string, password []byte) error {
	return c.do(ctx, http.MethodPost, "/register", credentialsRequest{Username: username, Password: string(password)}, nil)
}

// Login authenticates and stores the returned token for later calls.
func (c *APIClient) Login(ctx context.Context, username string, password []byte) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentialsRequest{Username: username, Password: string(password)}, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *APIClient) ListTasks(ctx context.Context) ([]Task, error) {
	var result []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) CreateTask(ctx context.Context, text string, status, priority *string) (*Task, error) {
	task := &Task{}
	err := c.do(ctx, http.MethodPost, "/tasks", createTaskRequest{Text: text, Status: status, Priority: priority}, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *APIClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

func (c *APIClient) UpdateStatus(ctx context.Context, id string, status string) (*Task, error) {
	task := &Task{}
	err := c.do(ctx, http.MethodPatch, "/"+id+"/status", map[string]string{"status": status}, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *APIClient) UpdatePriority(ctx context.Context, id string, priority string) (*Task, error) {
	task := &Task{}
	err := c.do(ctx, http.MethodPatch, "/"+id+"/priority", map[string]string{"priority": priority}, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *APIClient) UpdateText(ctx context.Context, id string, text string) (*Task, error) {
	task := &Task{}
	err := c.do(ctx, http.MethodPatch, "/tasks/"+id+"/text", map[string]string{"text": text}, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}
