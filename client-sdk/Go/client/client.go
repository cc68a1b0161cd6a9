package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// lrukv Go SDK
//
// A thin wrapper around the lrukv HTTP API.
//
// Non-2xx responses are returned as *APIError, except cache misses: Get and
// Remove report a missing key through their boolean result.
//
// Example usage:
//  c := NewClient("http://localhost:8080")
//  err := c.Put("user:1", "alice")
//  value, ok, err := c.Get("user:1")

// Client is a high-level HTTP client for lrukv.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// APIError represents an error returned by the lrukv server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lrukv: %d %s", e.StatusCode, e.Message)
}

// Stats mirrors the server's /v1/stats document.
type Stats struct {
	Shards    int    `json:"shards"`
	Len       int    `json:"len"`
	Cap       int    `json:"cap"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// NewClient creates a new lrukv client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// request sends an HTTP request and returns the response body.
func (c *Client) request(method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	return respBody, nil
}

func keyPath(key string) string {
	return "/v1/keys/" + url.PathEscape(key)
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// HealthCheck checks if the server is healthy. Returns true if healthy.
func (c *Client) HealthCheck() (bool, error) {
	resp, err := c.request(http.MethodGet, "/", nil)
	if err != nil {
		return false, err
	}
	var result map[string]any
	if err := json.Unmarshal(resp, &result); err != nil {
		return false, err
	}
	return result["status"] == "ok", nil
}

// Get returns the value for key. A miss is ("", false, nil).
func (c *Client) Get(key string) (string, bool, error) {
	resp, err := c.request(http.MethodGet, keyPath(key), nil)
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	var result struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return "", false, err
	}
	return result.Value, true, nil
}

// Put stores value under key.
func (c *Client) Put(key, value string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty")
	}
	if _, err := c.request(http.MethodPut, keyPath(key), map[string]string{"value": value}); err != nil {
		return fmt.Errorf("put %s failed: %w", key, err)
	}
	return nil
}

// Remove deletes key and reports whether it was present.
func (c *Client) Remove(key string) (bool, error) {
	if _, err := c.request(http.MethodDelete, keyPath(key), nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Keys lists cached keys, most recently used first within each shard.
func (c *Client) Keys() ([]string, error) {
	resp, err := c.request(http.MethodGet, "/v1/keys", nil)
	if err != nil {
		return nil, err
	}
	var result struct {
		Keys []string `json:"keys"`
	}
	err = json.Unmarshal(resp, &result)
	return result.Keys, err
}

// Purge removes every key.
func (c *Client) Purge() error {
	_, err := c.request(http.MethodDelete, "/v1/keys", nil)
	return err
}

// Stats returns hit, miss and eviction counters.
func (c *Client) Stats() (*Stats, error) {
	resp, err := c.request(http.MethodGet, "/v1/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats Stats
	if err := json.Unmarshal(resp, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
