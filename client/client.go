// Package client issues the introspection request and interprets the
// response. TLS certificate trust is classified here so the retry policy
// never has to look at transport internals.
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	json "encoding/json/v2"

	"github.com/go-resty/resty/v2"
)

const (
	requestTimeout = 30 * time.Second
	maxRedirects   = 5
)

type Client struct {
	endpoint           string
	query              string
	headers            map[string]string
	forceTLSValidation bool
}

// NewClient creates a client for one endpoint.
func NewClient(endpoint, query string, options ...Option) *Client {
	client := &Client{
		endpoint: endpoint,
		query:    query,
	}
	for _, option := range options {
		option(client)
	}

	return client
}

type Option func(*Client)

func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithForceTLSValidation disables the insecure retry on untrusted
// certificates.
func WithForceTLSValidation(force bool) Option {
	return func(c *Client) {
		c.forceTLSValidation = force
	}
}

type request struct {
	Query string `json:"query"`
}

// send performs a single POST attempt. When tlsValidate is false the server
// certificate is accepted without verification; the flag has no effect on
// plain HTTP endpoints.
func (c *Client) send(ctx context.Context, tlsValidate bool) ([]byte, error) {
	body, err := json.Marshal(request{Query: c.query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode introspection request: %w", err)
	}

	req := c.httpClient(tlsValidate).R().
		SetContext(ctx).
		SetHeaders(c.headers).
		SetBody(body)

	resp, err := req.Post(c.endpoint)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	return resp.Body(), nil
}

func (c *Client) httpClient(tlsValidate bool) *resty.Client {
	httpClient := resty.New().
		SetTimeout(requestTimeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	if !tlsValidate {
		// the insecure fallback attempt after an untrusted-certificate
		// failure; scoped to this one client
		httpClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}

	return httpClient
}
