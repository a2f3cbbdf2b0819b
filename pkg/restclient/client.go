/*
Copyright 2025 the Petstore QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// HeaderRequestID is the correlation header attached to every outgoing
// request. The value is a fresh UUID per call, never reused.
const HeaderRequestID = "X-Request-ID"

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// substitute a mock.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client builds and issues API requests against a fixed base URL. It is
// stateless across calls and safe for concurrent use.
type Client struct {
	baseURL     string
	transport   Doer
	maxBodySize int64
	strictQuery bool
}

// New creates a client from the given configuration.
func New(config *Config) (*Client, error) {
	config = config.withDefaults()

	if config.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrConfiguration)
	}

	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing base URL: %w", ErrConfiguration, err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", ErrConfiguration, config.BaseURL)
	}

	transport := config.Transport
	if transport == nil {
		transport = &http.Client{
			Timeout: config.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: config.ConnectTimeout,
				}).DialContext,
			},
		}
	}

	client := &Client{
		baseURL:     strings.TrimSuffix(config.BaseURL, "/"),
		transport:   transport,
		maxBodySize: config.MaxBodySize,
		strictQuery: config.StrictQuery,
	}

	return client, nil
}

// Get issues a GET request and decodes the response into out. A nil out
// discards the response body.
func (c *Client) Get(ctx context.Context, out any, segments ...any) error {
	return c.do(ctx, http.MethodGet, nil, nil, out, segments)
}

// GetWithQuery issues a GET request with query parameters supplied as
// "key=value" strings. Malformed parameters are dropped unless the client
// was configured with StrictQuery.
func (c *Client) GetWithQuery(ctx context.Context, out any, query []string, segments ...any) error {
	return c.do(ctx, http.MethodGet, nil, query, out, segments)
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, body, out any, segments ...any) error {
	return c.do(ctx, http.MethodPost, body, nil, out, segments)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, body, out any, segments ...any) error {
	return c.do(ctx, http.MethodPut, body, nil, out, segments)
}

// Delete issues a DELETE request with no body.
func (c *Client) Delete(ctx context.Context, out any, segments ...any) error {
	return c.do(ctx, http.MethodDelete, nil, nil, out, segments)
}

// DeleteWithBody issues a DELETE request carrying a JSON-encoded body.
// It reaches the same method on the wire as Delete, differing only in the
// attached payload.
func (c *Client) DeleteWithBody(ctx context.Context, body, out any, segments ...any) error {
	return c.do(ctx, http.MethodDelete, body, nil, out, segments)
}

// buildURL appends each path segment in order to the base URL, then the
// query string. Segments are coerced to text, stripped of any literal '/'
// so a segment value cannot inject extra path levels, and escaped
// individually.
func (c *Client) buildURL(segments []any, query []string) (string, error) {
	var builder strings.Builder

	builder.WriteString(c.baseURL)

	for _, segment := range segments {
		text := strings.ReplaceAll(fmt.Sprint(segment), "/", "")

		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(text))
	}

	values := url.Values{}

	for _, param := range query {
		key, value, ok := splitQueryParam(param)
		if !ok {
			if c.strictQuery {
				return "", fmt.Errorf("%w: %q", ErrMalformedQuery, param)
			}

			continue
		}

		values.Add(key, value)
	}

	if len(values) > 0 {
		builder.WriteByte('?')
		builder.WriteString(values.Encode())
	}

	return builder.String(), nil
}

// splitQueryParam splits a "key=value" string on the first '='. Parameters
// with no '=', an empty value, or further '=' characters in the value are
// reported as malformed.
func splitQueryParam(param string) (string, string, bool) {
	key, value, found := strings.Cut(param, "=")
	if !found || value == "" || strings.Contains(value, "=") {
		return "", "", false
	}

	return key, value, true
}

func (c *Client) do(ctx context.Context, method string, body any, query []string, out any, segments []any) error {
	target, err := c.buildURL(segments, query)
	if err != nil {
		return err
	}

	var reqBody io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Method: method, URL: target, Err: fmt.Errorf("encoding request body: %w", err)}
		}

		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return &RequestError{Method: method, URL: target, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set(HeaderRequestID, uuid.NewString())
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return &RequestError{Method: method, URL: target, Err: fmt.Errorf("http request failed: %w", err)}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return &RequestError{Method: method, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if int64(len(respBody)) > c.maxBodySize {
		return &RequestError{Method: method, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("response body exceeds %d bytes", c.maxBodySize)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RequestError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &RequestError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: string(respBody), Err: fmt.Errorf("decoding response body: %w", err)}
	}

	return nil
}
