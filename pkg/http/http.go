package http

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
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	body, status, _, err := c.do(req, headers, nil)
	return body, status, err
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, rawURL string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		payload = jsonBody
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	respBody, status, _, err := c.do(req, headers, payload)
	return respBody, status, err
}

// PostForm performs a POST request with a form-urlencoded body.
func (c *clientImpl) PostForm(ctx context.Context, rawURL string, form map[string]string, headers map[string]string) ([]byte, int, error) {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	payload := []byte(values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	respBody, status, _, err := c.do(req, headers, payload)
	return respBody, status, err
}

// PostRaw performs a POST request with an arbitrary byte payload and returns
// the response headers alongside the body.
func (c *clientImpl) PostRaw(ctx context.Context, rawURL string, contentType string, payload []byte, headers map[string]string) ([]byte, int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.do(req, headers, payload)
}

func (c *clientImpl) do(req *http.Request, headers map[string]string, payload []byte) ([]byte, int, http.Header, error) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	var resp *http.Response
	var err error
	for i := 0; i <= c.config.Retries; i++ {
		if i > 0 && payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
		}
		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			break
		}
		if i < c.config.Retries {
			if err == nil {
				// drain so the connection can be reused before retrying
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}
			time.Sleep(c.config.RetryWait)
		}
	}
	if err != nil {
		if c.config.Retries > 0 {
			return nil, 0, nil, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
		}
		if strings.Contains(err.Error(), "context deadline exceeded") {
			return nil, 0, nil, fmt.Errorf("request timed out: %w", err)
		}
		return nil, 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, resp.Header, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, resp.Header, nil
}
