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
	"time"

	"github.com/syauqi/course-admin/internal/model"
)

type tokenCtxKey struct{}

// WithToken binds the session's bearer token to the context for the duration
// of a request chain. Calls made with a context lacking a token simply omit
// the Authorization header and let the server reject them.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}

// Client issues authenticated requests against the course-management API and
// unwraps its response envelopes. It never retries and never branches on
// status codes beyond 2xx/not.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login exchanges credentials for a bearer token. The server wraps the token
// as {"user":{"token":...}}; an envelope without a token means the
// credentials were rejected.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		User struct {
			Token string `json:"token"`
		} `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users-login", nil, body, &out); err != nil {
		return "", err
	}
	if out.User.Token == "" {
		return "", ErrInvalidCredentials
	}
	return out.User.Token, nil
}

// Logout invalidates the server-side session for the given identity. The API
// acknowledges with a literal marker in the data field.
func (c *Client) Logout(ctx context.Context, uuidUser string) error {
	body := map[string]string{"uuid_user": uuidUser}

	var out struct {
		Data string `json:"data"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/logout", nil, body, &out); err != nil {
		return err
	}
	if out.Data != "Sukses Logout" {
		return fmt.Errorf("logout not acknowledged: %q", out.Data)
	}
	return nil
}

// Register creates an account through the public registration endpoint.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/users", nil, body, nil)
}

// UserPayload is the writable slice of a user record. Server-managed fields
// (identifier, timestamps) have no place here, so updates are structurally
// stripped before they go on the wire.
type UserPayload struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password,omitempty"`
	Role     model.Role `json:"role,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/api/getAll", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, payload UserPayload) (*model.User, error) {
	var created model.User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, payload UserPayload) (*model.User, error) {
	var updated model.User
	if err := c.do(ctx, http.MethodPut, "/api/update-user/"+url.PathEscape(id), nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/delete-user/"+url.PathEscape(id), nil, nil, nil)
}

// CoursePayload is the writable slice of a course record.
type CoursePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListCourses fetches one page of the course collection.
func (c *Client) ListCourses(ctx context.Context, page, limit int) (model.Page[model.Course], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result model.Page[model.Course]
	if err := c.do(ctx, http.MethodGet, "/api/get-courses", query, nil, &result); err != nil {
		return model.Page[model.Course]{}, err
	}
	if result.Page == 0 {
		result.Page = page
	}
	return result, nil
}

func (c *Client) CreateCourse(ctx context.Context, payload CoursePayload) (*model.Course, error) {
	var created model.Course
	if err := c.do(ctx, http.MethodPost, "/api/courses", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, payload CoursePayload) (*model.Course, error) {
	var updated model.Course
	if err := c.do(ctx, http.MethodPut, "/api/update-course/"+url.PathEscape(id), nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/delete-course/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func serverMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(data))
}
