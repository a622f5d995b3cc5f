// Package ebird is the HTTP gateway to the eBird API 2.0.
package ebird

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bobmcallan/ebird-mcp/internal/common"
	"github.com/bobmcallan/ebird-mcp/internal/config"
)

// APIKeyHeader carries the eBird credential on every request.
const APIKeyHeader = "X-eBirdApiToken"

// maxResponseSize caps the upstream body. Region-wide taxonomy dumps run to a few MB.
var maxResponseSize int64 = 50 << 20

// ErrResponseTooLarge is returned when a success body exceeds maxResponseSize.
var ErrResponseTooLarge = errors.New("response exceeds size limit")

// maxErrorBody bounds how much of an error body is kept on GatewayError.
const maxErrorBody = 512

// Client issues GET requests against the eBird API. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client for cfg.BaseURL authenticated with apiKey.
func NewClient(cfg config.EBirdConfig, apiKey string, logger *common.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    apiKey,
		userAgent: config.UserAgent(),
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		logger: logger,
	}
}

// BaseURL returns the configured upstream root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs one GET of path with query and returns the JSON body as received.
func (c *Client) Call(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	c.logger.Debug().Str("method", "GET").Str("path", path).Str("query", query.Encode()).Msg("ebird request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("ebird request failed")
		return nil, &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Int64("duration_ms", duration.Milliseconds()).Msg("ebird response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("ebird request rejected")
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Path:       path,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
	}

	if int64(len(body)) > maxResponseSize {
		c.logger.Warn().Str("path", path).Int64("limit_bytes", maxResponseSize).Msg("ebird response too large")
		return nil, &TransportError{Path: path, Err: fmt.Errorf("%w of %d bytes", ErrResponseTooLarge, maxResponseSize)}
	}

	if !json.Valid(body) {
		return nil, &DecodeError{Path: path, Err: decodeCause(body)}
	}

	return json.RawMessage(body), nil
}

// statusText returns "404 Not Found" style text even when the server sent a bare code.
func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// decodeCause recovers the json syntax error for a body already known to be invalid.
func decodeCause(body []byte) error {
	if len(body) == 0 {
		return errors.New("empty response body")
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}
	return errors.New("malformed JSON")
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
