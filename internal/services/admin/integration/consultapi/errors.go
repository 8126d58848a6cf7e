package consultapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	// GenericMessage is shown when the API gave no usable explanation.
	GenericMessage = "Something went wrong. Please try again."
	// InvalidEnvelopeMessage reports a success:false envelope without a message.
	InvalidEnvelopeMessage = "Invalid data structure received from API"
)

// ErrUnauthenticated is returned when no bearer token is available for a call.
var ErrUnauthenticated = errors.New("no admin session token")

// Error is the normalized failure of one API call.
//
// Status is 0 for transport failures. Generic is set when Message is the
// fallback text rather than something the server said.
type Error struct {
	Op      string
	Status  int
	Message string
	Generic bool
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("consultapi %s: status %d: %s: %v", e.Op, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("consultapi %s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err means the admin must sign in again.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthenticated) {
		return true
	}
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// envelopeFailure marks a response body that decoded but reported success:false.
type envelopeFailure struct {
	message string
}

func (e envelopeFailure) Error() string {
	if e.message == "" {
		return InvalidEnvelopeMessage
	}
	return e.message
}

func transportError(op string, err error) *Error {
	return &Error{Op: op, Message: GenericMessage, Generic: true, Err: err}
}

func unauthenticatedError(op string, err error) *Error {
	if err == nil {
		err = ErrUnauthenticated
	} else if !errors.Is(err, ErrUnauthenticated) {
		err = fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return &Error{Op: op, Status: http.StatusUnauthorized, Message: GenericMessage, Generic: true, Err: err}
}

// statusError converts a non-2xx response, preferring the server's message.
func statusError(op string, status int, body []byte) *Error {
	if message := serverMessage(body); message != "" {
		return &Error{Op: op, Status: status, Message: message}
	}
	return &Error{Op: op, Status: status, Message: GenericMessage, Generic: true}
}

// decodeFailure converts a 2xx response whose body could not be used.
func decodeFailure(op string, status int, err error) *Error {
	var envelope envelopeFailure
	if errors.As(err, &envelope) {
		return &Error{Op: op, Status: status, Message: envelope.Error(), Err: err}
	}
	return &Error{Op: op, Status: status, Message: GenericMessage, Generic: true, Err: err}
}

func serverMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, raw := range []json.RawMessage{payload.Message, payload.Error} {
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				return text
			}
		}
	}
	return ""
}
