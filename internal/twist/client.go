// Package twist implements an authenticated client for the Twist v3 REST API.
package twist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/twist-mcp/internal/common"
	"github.com/bobmcallan/twist-mcp/internal/config"
)

// Client issues authenticated requests against the Twist v3 REST API.
// It holds no state beyond the credentials loaded at startup.
type Client struct {
	baseURL     string
	token       string
	workspaceID string
	httpClient  *http.Client
	logger      *common.Logger
}

// NewClient creates a Twist API client from config.
func NewClient(cfg config.TwistConfig, logger *common.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		token:       cfg.APIToken,
		workspaceID: cfg.WorkspaceID,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		logger: logger,
	}
}

// WithCorrelationId returns a shallow copy of the client whose log entries
// carry the given correlation ID. Used by MCP handlers to trace a tool call
// through the client.
func (c *Client) WithCorrelationId(id string) *Client {
	clone := *c
	clone.logger = c.logger.WithCorrelationId(id)
	return &clone
}

// WorkspaceID returns the configured workspace identifier, or empty string.
func (c *Client) WorkspaceID() string {
	return c.workspaceID
}

// Get performs a GET request against the given endpoint (relative to the
// API base, e.g. "inbox/get") and returns the response body.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	c.logger.Debug().
		Str("method", "GET").
		Str("endpoint", endpoint).
		Msg("Twist API Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req, endpoint)
}

// Post performs a POST request with a JSON body against the given endpoint
// and returns the response body.
func (c *Client) Post(ctx context.Context, endpoint string, data interface{}) ([]byte, error) {
	c.logger.Debug().
		Str("method", "POST").
		Str("endpoint", endpoint).
		Str("data", fmt.Sprintf("%v", data)).
		Msg("Twist API Request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, endpoint)
}

// do sends the request with bearer auth and returns the body, converting
// non-2xx responses into errors carrying the upstream message.
func (c *Client) do(req *http.Request, endpoint string) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Dur("duration", duration).Msg("Twist API Request Failed")
		return nil, fmt.Errorf("twist request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Str("response", string(body)).
		Msg("Twist API Response")

	if resp.StatusCode >= 400 {
		var errResp struct {
			ErrorString string `json:"error_string"`
			ErrorCode   int    `json:"error_code"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.ErrorString != "" {
			return nil, fmt.Errorf("%s", errResp.ErrorString)
		}
		return nil, fmt.Errorf("twist returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
