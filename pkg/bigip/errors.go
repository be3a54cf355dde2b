package bigip

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when the request never produced a response
	ErrTransport = errors.New("icontrol transport error")

	// errEncodeRequest is returned when the client is unable to encode the request body
	errEncodeRequest = errors.New("failed to encode request body")

	// errReadResponse is returned when the client is unable to read the response body
	errReadResponse = errors.New("failed to read response body")

	// errDecodeResponse is returned when the client is unable to decode the response body
	errDecodeResponse = errors.New("failed to decode response body")
)

// StatusError is returned in strict mode when the server responds with a
// non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("icontrol http error: status %d: %s", e.StatusCode, e.Body)
}

func newError(err error, subErr error) error {
	return fmt.Errorf("%w: %v", err, subErr)
}
