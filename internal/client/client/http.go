package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/dmitrijs2005/gophtasks/internal/common"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:5000/api").
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type messageResponse struct {
	Message string `json:"message"`
}

// do sends body as JSON (when non-nil) and decodes a 2xx response into out
// (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.bearer(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&m)
		return &APIError{Status: resp.StatusCode, Message: m.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	return resp.Message, err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	return resp.Token, err
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) ListTasksPaged(ctx context.Context, page, limit int) (*models.TaskPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var p models.TaskPage
	if err := c.do(ctx, http.MethodGet, "/tasks/paginated", q, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, title, description string) (*models.Task, error) {
	var t models.Task
	err := c.do(ctx, http.MethodPost, "/tasks", nil, map[string]string{
		"title":       title,
		"description": description,
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, patch, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, nil)
}

func (c *HTTPClient) SearchTasks(ctx context.Context, query string) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/search", url.Values{"q": {query}}, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) FilterTasks(ctx context.Context, completed *bool) ([]models.Task, error) {
	var q url.Values
	if completed != nil {
		q = url.Values{"completed": {strconv.FormatBool(*completed)}}
	}

	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/filter", q, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) ExportTasks(ctx context.Context) (*models.Export, error) {
	var e models.Export
	if err := c.do(ctx, http.MethodPost, "/tasks/export", nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
