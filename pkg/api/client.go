// Package api is the REST boundary to the Foiné service. The client owns
// request framing and bearer credentials; response envelope normalization
// for the feed lives in pkg/feed, which consumes the raw payload returned
// here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/l9rins/foine-2025/pkg/post"
)

// DefaultBaseURL points at a local development server.
const DefaultBaseURL = "http://localhost:8080/api"

// Client talks to the service. It is safe to share across commands; the
// token is set once after login and attached to every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient builds a client for the given base URL. A nil httpClient gets
// a sane default with a timeout; an empty baseURL falls back to the local
// development server.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// CreateRequest carries the multipart fields for a new post.
type CreateRequest struct {
	Title       string
	Description string
	FilePath    string
	Tags        []string
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/auth/login", credentials{Username: username, Password: password})
}

// Register creates an account and returns its first session token.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	return c.authenticate(ctx, "/auth/register", credentials{Username: username, Email: email, Password: password})
}

func (c *Client) authenticate(ctx context.Context, path string, creds credentials) (string, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("api: encode credentials: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("api: decode token response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("api: no token in response")
	}
	return resp.Token, nil
}

// FetchPosts returns the raw feed payload. The envelope shape is not
// guaranteed, so the body is handed back unparsed for normalization at the
// repository boundary.
func (c *Client) FetchPosts(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/posts", "", nil)
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (*post.Post, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), "", nil)
	if err != nil {
		return nil, err
	}
	p := &post.Post{}
	if err := json.Unmarshal(body, p); err != nil {
		return nil, fmt.Errorf("api: decode post: %w", err)
	}
	p.Sanitize()
	return p, nil
}

// CreatePost submits a new post as multipart form data: title, description,
// the image file, and one field per tag. The created record returned by the
// service is trusted as-is.
func (c *Client) CreatePost(ctx context.Context, req CreateRequest) (*post.Post, error) {
	file, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("api: open image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("title", req.Title); err != nil {
		return nil, fmt.Errorf("api: build form: %w", err)
	}
	if err := form.WriteField("description", req.Description); err != nil {
		return nil, fmt.Errorf("api: build form: %w", err)
	}
	part, err := form.CreateFormFile("file", filepath.Base(req.FilePath))
	if err != nil {
		return nil, fmt.Errorf("api: build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("api: read image: %w", err)
	}
	for _, tag := range req.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if err := form.WriteField("tags", tag); err != nil {
			return nil, fmt.Errorf("api: build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("api: build form: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/posts", form.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	created := &post.Post{}
	if err := json.Unmarshal(body, created); err != nil {
		return nil, fmt.Errorf("api: decode created post: %w", err)
	}
	created.Sanitize()
	return created, nil
}

// DeletePost removes a post the session owns.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), "", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, data)
	}
	return data, nil
}

// StatusError is a non-2xx response. Message carries the human-readable
// error field from the body when the service provided one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: server returned status %d", e.StatusCode)
}

func newStatusError(status int, body []byte) *StatusError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			msg = payload.Error
		} else if payload.Message != "" {
			msg = payload.Message
		}
	}
	return &StatusError{StatusCode: status, Message: msg}
}
