package platform

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dcode-oj/dcode-cli/api"
)

// APIError is a non-2xx response from the backend. Its message is the most
// specific field the backend supplied: error, then message, then a generic
// fallback.
type APIError struct {
	StatusCode int
	Envelope   api.ErrorResp
}

func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode}
	// The envelope is best-effort; some handlers return plain text.
	_ = json.Unmarshal(body, &e.Envelope)
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message())
}

// Message returns the user-facing message for this error.
func (e *APIError) Message() string {
	if e.Envelope.Error != "" {
		return e.Envelope.Error
	}
	if e.Envelope.Message != "" {
		return e.Envelope.Message
	}
	return "request failed"
}

// DetailMessage returns the user-facing message preferring the envelope's
// message field over error. The AI review endpoint wraps upstream failures
// with the useful detail in message, the reverse of the other handlers.
func (e *APIError) DetailMessage() string {
	if e.Envelope.Message != "" {
		return e.Envelope.Message
	}
	if e.Envelope.Error != "" {
		return e.Envelope.Error
	}
	return "request failed"
}

// UserMessage extracts the most specific message from any error returned by
// the client, falling back to the given default for transport failures with
// no envelope.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

// DetailedUserMessage is UserMessage with the review endpoint's field
// preference.
func DetailedUserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.DetailMessage()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
