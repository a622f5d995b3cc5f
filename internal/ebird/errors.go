package ebird

import "fmt"

// GatewayError is returned when the eBird API answers with a non-success status.
type GatewayError struct {
	StatusCode int
	Status     string
	Path       string
	Body       string
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("eBird API returned %s for %s", e.Status, e.Path)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// DecodeError is returned when a success response body is not valid JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON from eBird API for %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError wraps network-level failures (DNS, refused connections, timeouts).
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("eBird API request failed for %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
