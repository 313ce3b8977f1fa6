package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies why an upstream call could not produce data.
type ErrorKind string

const (
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
	KindMalformedPayload    ErrorKind = "malformed_payload"
	KindNotFound            ErrorKind = "not_found"
)

// ErrProviderUnavailable is returned when no provider is wired for a call.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamError captures a failed upstream call.
type UpstreamError struct {
	Provider   string
	Endpoint   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Provider, e.Endpoint, e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError builds an UpstreamError of the given kind.
func NewUpstreamError(provider, endpoint string, kind ErrorKind, status int, err error) *UpstreamError {
	return &UpstreamError{
		Provider:   provider,
		Endpoint:   endpoint,
		Kind:       kind,
		StatusCode: status,
		Err:        err,
	}
}

// Malformed reports a payload that decoded but lacks an expected field or shape.
func Malformed(provider, endpoint string, format string, args ...any) *UpstreamError {
	return NewUpstreamError(provider, endpoint, KindMalformedPayload, 0, fmt.Errorf(format, args...))
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// KindOf classifies any error returned by a provider. Nil yields an empty kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if upErr, ok := AsUpstreamError(err); ok && upErr.Kind != "" {
		return upErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, ErrProviderUnavailable) {
		return KindUpstreamUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUpstreamUnavailable
	}
	return KindMalformedPayload
}
