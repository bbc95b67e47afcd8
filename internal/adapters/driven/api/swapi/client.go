package swapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
	"github.com/holocron-labs/holocron-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CatalogAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://www.swapi.tech/api"
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond throttles the detail fan-out so a
	// ten-record page does not land as one burst on the server.
	DefaultRequestsPerSecond = 20
)

// Config holds configuration for the catalog client.
type Config struct {
	// BaseURL is the catalog API base URL (default: https://www.swapi.tech/api).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond caps outgoing request rate (default: 20).
	RequestsPerSecond int
}

// Client talks to the catalog REST service.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// listResponse is the wire format of list endpoints.
type listResponse struct {
	Results    []listRecord `json:"results"`
	TotalPages int          `json:"totalPages"`
}

// listRecord is one summary record. People, starships and vehicles
// carry name; films carry title.
type listRecord struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// detailResponse is the wire format of detail endpoints.
type detailResponse struct {
	Result struct {
		UID         string         `json:"uid"`
		Description string         `json:"description"`
		Properties  map[string]any `json:"properties"`
	} `json:"result"`
}

// credentialsRequest is the body of signin and signup.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signInResponse is the wire format of a successful signin.
type signInResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// messageResponse carries the server's message on signup and on
// rejected requests.
type messageResponse struct {
	Message string `json:"message"`
}

// NewClient creates a new catalog client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond),
	}
}

// ListPage fetches one page of summary records.
func (c *Client) ListPage(
	ctx context.Context, token string, category domain.Category,
	page, limit int, name string,
) (*domain.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if name != "" {
		query.Set("name", name)
	}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, category, query.Encode())

	var wire listResponse
	if err := c.get(ctx, token, endpoint, &wire); err != nil {
		return nil, err
	}

	records := make([]domain.CatalogRecord, len(wire.Results))
	for i, r := range wire.Results {
		records[i] = domain.CatalogRecord{
			UID:   r.UID,
			Name:  r.Name,
			Title: r.Title,
		}
	}

	totalPages := wire.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	return &domain.PageResult{
		Results:    records,
		TotalPages: totalPages,
	}, nil
}

// GetDetail fetches the full record for one uid.
func (c *Client) GetDetail(
	ctx context.Context, token string, category domain.Category, uid string,
) (*domain.CatalogRecord, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, category, url.PathEscape(uid))

	var wire detailResponse
	if err := c.get(ctx, token, endpoint, &wire); err != nil {
		return nil, err
	}

	record := &domain.CatalogRecord{
		UID:         wire.Result.UID,
		Description: wire.Result.Description,
		Properties:  wire.Result.Properties,
	}
	if record.Properties == nil {
		record.Properties = domain.Properties{}
	}
	return record, nil
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, username, password string) (*domain.Session, error) {
	var wire signInResponse
	err := c.post(ctx, c.baseURL+"/auth/signin", credentialsRequest{
		Username: username,
		Password: password,
	}, &wire)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token: wire.Token,
		Role:  wire.Role,
	}, nil
}

// SignUp registers an account and returns the server's message.
func (c *Client) SignUp(ctx context.Context, username, password string) (string, error) {
	var wire messageResponse
	err := c.post(ctx, c.baseURL+"/auth/signup", credentialsRequest{
		Username: username,
		Password: password,
	}, &wire)
	if err != nil {
		return "", err
	}
	return wire.Message, nil
}

// get performs a throttled GET and decodes the body into out.
func (c *Client) get(ctx context.Context, token, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

// post performs a throttled POST with a JSON body and decodes the
// response into out.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do sends one request through the rate limiter and decodes the
// response. Non-2xx responses become APIError with the server's
// message when one is present.
func (c *Client) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	logger.Debug("[%s] %s %s", requestID, req.Method, req.URL)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("[%s] status %d", requestID, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readMessage(resp.Body),
			URL:        req.URL.String(),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readMessage extracts the message field of an error body, if any.
func readMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var wire messageResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return ""
	}
	return wire.Message
}
