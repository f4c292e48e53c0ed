package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the outbound clients. The HTTP layer maps them to
// gateway status codes.
var (
	// ErrUpstreamTimeout is returned when an outbound call exceeds the client
	// timeout or its context deadline.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrUpstream marks any non-timeout provider failure, including an open
	// circuit breaker. Use [errors.As] with [*UpstreamError] to read the
	// provider status code and message.
	ErrUpstream = errors.New("upstream error")

	// ErrGistPublish is returned when creating a gist comment fails.
	ErrGistPublish = errors.New("failed to publish gist comment")

	// ErrGistEdit is returned when editing a gist comment fails.
	ErrGistEdit = errors.New("failed to edit gist comment")

	// ErrGistDelete is returned when deleting a gist comment fails.
	ErrGistDelete = errors.New("failed to delete gist comment")
)

// UpstreamError carries the status code and message of a failed provider
// call, passed through unchanged for diagnostics.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: status %d: %s", e.Code, e.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrUpstream).
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
