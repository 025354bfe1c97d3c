// Package api implements the HTTP transport for the flight-search API.
//
// The remote service is opaque: every endpoint is a GET with query parameters
// returning JSON. The client carries a base URL, the fixed RapidAPI headers,
// and one global per-call timeout.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ekaraman/skyfare/internal/logging"
)

type Client struct {
	baseURL string
	headers map[string]string
	hc      *http.Client
	log     logging.Logger
}

// New builds a transport client. key and host are sent as the X-RapidAPI-Key
// and X-RapidAPI-Host headers on every request; timeout bounds each call.
func New(baseURL, key, host string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: map[string]string{
			"Content-Type":    "application/json",
			"Accept":          "application/json",
			"X-RapidAPI-Key":  key,
			"X-RapidAPI-Host": host,
		},
		hc:  &http.Client{Timeout: timeout},
		log: log,
	}
}

// GetJSON issues a GET for path with the given query parameters and decodes
// the JSON response body into out. Non-2xx responses become a *StatusError;
// context cancellation propagates unchanged so callers can match it with
// errors.Is(err, context.Canceled).
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("api: build request %s: %w", path, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api: request failed", "path", path, "error", err)
		return fmt.Errorf("api: get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug(ctx, "api: response error", "path", path, "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}
