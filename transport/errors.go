package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Internal error codes. These occupy a range disjoint from HTTP statuses
// (100-500) so a caller inspecting Error.Code can never mistake a local
// failure for a server-reported one.
const (
	// CodeNoData indicates a success status with an empty body where a body
	// was required.
	CodeNoData = 600
	// CodeInvalidJSON indicates a body that is not valid JSON.
	CodeInvalidJSON = 601
	// CodeInvalidResponse indicates valid JSON whose shape does not match
	// the expected model.
	CodeInvalidResponse = 602
	// CodeInvalidRequest indicates parameters that cannot form a valid
	// request; no network call was made.
	CodeInvalidRequest = 603
)

// Error is the typed error surfaced by the transport and endpoint layers.
//
// For HTTP errors Code equals the response status. For local failures Code
// is one of the internal constants above. For network-layer failures Code is
// zero and Err holds the original error.
type Error struct {
	// Code is the numeric error code.
	Code int
	// Message describes the error. For HTTP errors it carries the
	// server-supplied message when one was present in the body.
	Message string
	// Body is the raw response body, if any.
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Code >= 100 && e.Code <= 599:
		if e.Message != "" {
			return fmt.Sprintf("transport: HTTP %d: %s", e.Code, e.Message)
		}
		return fmt.Sprintf("transport: HTTP %d", e.Code)
	case e.Code >= 600:
		return fmt.Sprintf("transport: %s (code %d)", e.Message, e.Code)
	default:
		return fmt.Sprintf("transport: %s", e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an error for a non-success HTTP status. The message
// is taken from the server's body when it carries one.
func NewHTTPError(statusCode int, body []byte) *Error {
	return &Error{
		Code:    statusCode,
		Message: serverMessage(body),
		Body:    body,
	}
}

// NewNoDataError creates the error for a required-but-empty response body.
func NewNoDataError() *Error {
	return &Error{Code: CodeNoData, Message: "no data in response"}
}

// NewInvalidJSONError creates the error for an undecodable response body.
func NewInvalidJSONError(err error) *Error {
	return &Error{Code: CodeInvalidJSON, Message: "response is not valid JSON", Err: err}
}

// NewInvalidResponseError creates the error for a decodable response whose
// shape does not match the expected model.
func NewInvalidResponseError(reason string) *Error {
	return &Error{Code: CodeInvalidResponse, Message: "unexpected response shape: " + reason}
}

// NewInvalidRequestError creates the error for locally rejected parameters.
func NewInvalidRequestError(reason string, err error) *Error {
	return &Error{Code: CodeInvalidRequest, Message: reason, Err: err}
}

// NewNetworkError wraps a network-layer failure. The original error is
// preserved via Unwrap.
func NewNetworkError(err error) *Error {
	return &Error{Message: err.Error(), Err: err}
}

// IsHTTPStatus checks whether err is an HTTP error with the given status.
func IsHTTPStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == status
}

// IsHTTPError checks whether err carries a server-reported status.
func IsHTTPError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code >= 100 && e.Code <= 599
}

// IsNoData checks for the empty-body error.
func IsNoData(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNoData
}

// IsInvalidJSON checks for the malformed-JSON error.
func IsInvalidJSON(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidJSON
}

// IsInvalidResponse checks for the shape-mismatch error.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidResponse
}

// IsInvalidRequest checks for the unbuildable-request error.
func IsInvalidRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidRequest
}

// IsNetwork checks for a network-layer failure.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == 0
}

// serverMessage extracts a server-supplied error message from a JSON body.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
