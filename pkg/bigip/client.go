// Package bigip is a client for the F5 BIG-IP iControl REST API.
package bigip

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var defaultClientTimeout = 30 * time.Second

const defaultPartition = "Common"

// HTTPClient interface
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the iControl REST API of a single BIG-IP.
//
// The session configuration (credentials, strict mode, transport) is fixed at
// construction. In the default mode non-2xx responses are decoded and returned
// as data for the caller to inspect; with WithStrictErrors any non-2xx
// response is returned as a *StatusError instead.
type Client struct {
	client   HTTPClient
	baseURL  string
	username string
	password string
	strict   bool
	insecure bool
	logger   *zap.SugaredLogger
}

// Option configures a connection option.
type Option func(c *Client)

// NewClient returns a client for the BIG-IP at host (hostname or IP, without
// scheme or the /mgmt/tm prefix).
func NewClient(host, username, password string, options ...Option) *Client {
	c := &Client{
		baseURL:  fmt.Sprintf("https://%s/mgmt/tm", host),
		username: username,
		password: password,
		logger:   zap.NewNop().Sugar(),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: defaultClientTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: c.insecure},
			},
		}
	}

	return c
}

// WithHTTPClient injects your specific http client. Timeouts, retries and TLS
// policy all belong to the injected client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

// WithInsecureSkipVerify disables TLS certificate verification on the default
// transport. It has no effect when a client is injected with WithHTTPClient.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.insecure = true
	}
}

// WithStrictErrors makes every non-2xx response surface as a *StatusError
// instead of being returned as decoded data.
func WithStrictErrors() Option {
	return func(c *Client) {
		c.strict = true
	}
}

// WithLogger sets the logger for the client
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// do performs one round-trip and decodes the response body once. Every write
// body is JSON; every request carries basic auth.
func (c *Client) do(ctx context.Context, method, url string, body any) (Resource, error) {
	var payload io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, newError(errEncodeRequest, err)
		}

		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, newError(ErrTransport, err)
	}

	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(errReadResponse, err)
	}

	if c.strict && (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices) {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	c.logger.Debugw("icontrol response", "method", method, "url", url, "status", resp.StatusCode)

	res := Resource{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &res); err != nil {
			return nil, newError(errDecodeResponse, err)
		}
	}

	return res, nil
}

// deleteResource implements the idempotent delete used by pools, nodes and
// partitions: probe with GET, DELETE only when the probe found the resource,
// then GET again to confirm the 404.
func (c *Client) deleteResource(ctx context.Context, url string, get func(ctx context.Context) (Resource, error)) (Resource, error) {
	res, err := get(ctx)
	if err != nil {
		return nil, err
	}

	// Already absent: hand the error payload back untouched.
	if res.APIError() != nil {
		return res, nil
	}

	deleted, err := c.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}

	confirm, err := get(ctx)
	if err != nil {
		return nil, err
	}

	if confirm.IsNotFound() {
		return Resource{}, nil
	}

	return deleted, nil
}
