package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
)

const (
	// DefaultBaseURL is the production Sheets API endpoint.
	DefaultBaseURL = "https://sheets.googleapis.com/v4"

	// Scope grants read/write access to spreadsheets.
	Scope = "https://www.googleapis.com/auth/spreadsheets"
)

// ValueRange mirrors the Sheets API values resource.
type ValueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// Client talks to the Google Sheets REST API. The embedded http.Client is
// reused across requests for connection pooling and token reuse.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// New creates a client authenticated with the service-account key at path.
// The returned client refreshes access tokens as needed.
func New(ctx context.Context, credentialsFile string, opts ...Option) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentials, err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(data, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentials, err)
	}

	c := &Client{
		httpClient: jwtConfig.Client(ctx),
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewWithClient creates a client around a caller-supplied http.Client,
// bypassing service-account auth. Used in tests and for pre-authenticated
// transports.
func NewWithClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	c := &Client{httpClient: httpClient, baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AppendRow appends a single row to the named sheet.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, sheet string, values []string) error {
	endpoint := fmt.Sprintf(
		"%s/spreadsheets/%s/values/%s:append?insertDataOption=INSERT_ROWS&valueInputOption=USER_ENTERED",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(sheet),
	)

	body, err := json.Marshal(map[string][][]string{"values": {values}})
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp)
}

// Values reads a range from the named sheet, e.g. rng "A2:A".
func (c *Client) Values(ctx context.Context, spreadsheetID, sheet, rng string) (*ValueRange, error) {
	endpoint := fmt.Sprintf(
		"%s/spreadsheets/%s/values/%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(sheet+"!"+rng),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var vr ValueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return &vr, nil
}

// checkStatus turns a non-2xx response into a typed error carrying a
// sanitized snippet of the body for context. The 64KB read cap prevents
// memory exhaustion on hostile responses.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	snippet := strings.ReplaceAll(string(body), "\n", " ")
	if len(snippet) > 200 {
		snippet = snippet[:200] + "..."
	}
	if snippet != "" {
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, snippet)
	}
	return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
}
