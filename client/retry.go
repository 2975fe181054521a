package client

import (
	"context"
	"errors"
	"log/slog"
)

// Fetch runs the introspection request with the two-attempt TLS policy: one
// validating attempt, and on an untrusted-certificate failure exactly one
// insecure attempt whose outcome is final. Every other failure, and any
// failure under forced validation, propagates unchanged.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	body, err := c.send(ctx, true)
	if err == nil {
		return body, nil
	}

	if c.forceTLSValidation {
		return nil, err
	}

	var tlsErr *TLSUntrustedError
	if !errors.As(err, &tlsErr) {
		return nil, err
	}

	slog.Warn("server certificate is not trusted, retrying without TLS validation", "endpoint", c.endpoint, "error", tlsErr.Err)

	return c.send(ctx, false)
}
