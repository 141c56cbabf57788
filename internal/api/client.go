// ABOUTME: HTTP client for the book library API
// ABOUTME: Wraps REST calls with error normalization for CLI and TUI usage

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TokenSource supplies the current session token for authenticated requests.
// An empty return means no token is attached.
type TokenSource func() string

// Client is the API client for the book library backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTokenSource wires the session token provider. Requests made before this
// is called go out unauthenticated.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Book represents a book record as returned by the server
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	TotalPages  int    `json:"totalPages"`
}

// Draft is the editable shape of a book, lacking a server-assigned id.
// All five fields are always sent on create and update.
type Draft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	TotalPages  int    `json:"totalPages"`
}

// User represents the authenticated user's profile
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Error is an API failure normalized from the server's error body.
// FieldErrors carries per-field validation messages when the server
// reports them (e.g. errors.username, errors.password).
type Error struct {
	Status      int
	Message     string
	FieldErrors map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// errorBody is the server's error response shape, decoded once here
// rather than re-inspected at each call site.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. The caller logs in afterwards.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", registerRequest{Username: username, Email: email, Password: password}, nil)
}

// ListBooks calls GET /books and returns the full collection in server order
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook calls GET /books/{id}
func (c *Client) GetBook(ctx context.Context, id string) (*Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodGet, "/books/"+id, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook calls POST /books and returns the record with its assigned id
func (c *Client) CreateBook(ctx context.Context, draft *Draft) (*Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodPost, "/books", draft, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook calls PUT /books/{id} with a full replacement of the editable fields
func (c *Client) UpdateBook(ctx context.Context, id string, draft *Draft) (*Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodPut, "/books/"+id, draft, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook calls DELETE /books/{id}
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+id, nil, nil)
}

// Profile calls GET /user/profile for the authenticated user
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile calls PUT /user/profile/{id}
func (c *Client) UpdateProfile(ctx context.Context, id, username, email string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/user/profile/"+id, profileUpdate{Username: username, Email: email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// do issues one request and decodes the response into out (when non-nil).
// Error responses are normalized into *Error; transport failures are wrapped.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from server: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to server at %s: %w", c.baseURL, err)
}

// handleErrorResponse normalizes API error responses into *Error
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiErr
	}
	apiErr.Message = body.Message
	apiErr.FieldErrors = body.Errors
	return apiErr
}
