package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// TLSUntrustedError marks a transport failure caused by a certificate the
// local trust store rejects (self-signed, unknown authority, bad hostname).
// It is the only error class the retry policy reacts to.
type TLSUntrustedError struct {
	Err error
}

func (e *TLSUntrustedError) Error() string {
	return fmt.Sprintf("server certificate is not trusted: %v", e.Err)
}

func (e *TLSUntrustedError) Unwrap() error { return e.Err }

func (e *TLSUntrustedError) Hints() []string {
	return []string{
		"The server may use a self-signed certificate; the request is retried without TLS validation unless --force-tls-validation is set",
		"Add the certificate to the local trust store to avoid the insecure fallback",
	}
}

// untrustedCertSignatures is the message-substring fallback for transports
// that do not surface typed certificate errors.
var untrustedCertSignatures = []string{
	"x509:",
	"self-signed certificate",
	"self signed certificate",
	"certificate signed by unknown authority",
	"certificate is not trusted",
	"failed to verify certificate",
}

// classifyTransportError wraps certificate-trust failures in
// *TLSUntrustedError and returns every other transport failure unchanged as
// a plain network error.
func classifyTransportError(err error) error {
	var (
		verifyErr  *tls.CertificateVerificationError
		authErr    x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)
	if errors.As(err, &verifyErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr) {
		return &TLSUntrustedError{Err: err}
	}

	msg := err.Error()
	for _, signature := range untrustedCertSignatures {
		if strings.Contains(msg, signature) {
			return &TLSUntrustedError{Err: err}
		}
	}

	return fmt.Errorf("introspection request failed: %w", err)
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("endpoint returned HTTP %d %s", e.Code, http.StatusText(e.Code))
}

var statusHints = map[int][]string{
	http.StatusUnauthorized: {
		"The endpoint requires authentication",
		"Provide credentials with -H 'Authorization=Bearer <token>', an auth file, or GRAPHQL_HEADER_* environment variables",
	},
	http.StatusForbidden: {
		"The supplied credentials are not allowed to run introspection",
		"Verify the token or API key has access to this API",
	},
	http.StatusNotFound: {
		"Check that the URL is correct and points at the GraphQL endpoint",
		"Many servers expose GraphQL under a path such as /graphql or /query",
	},
	http.StatusInternalServerError: {
		"The server failed while executing the introspection query",
		"Check the server logs, or try again later",
	},
}

func (e *StatusError) Hints() []string {
	if hints, ok := statusHints[e.Code]; ok {
		return hints
	}

	return []string{
		"The endpoint answered, but not with a usable GraphQL response",
		"Confirm the URL accepts GraphQL POST requests",
	}
}
