package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Call is a method call directed to a channel.
type Call struct {
	// ID identifies the call. The response carries the same ID.
	ID string `json:"id"`

	// Channel is the name of the target channel.
	Channel string `json:"channel"`

	// Method is the name of the method to invoke.
	Method string `json:"method"`

	// Arguments contains OPTIONAL method arguments.
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Possible values of Response.Status.
const (
	StatusSuccess        = "success"
	StatusError          = "error"
	StatusNotImplemented = "not_implemented"
)

// Possible values of Response.Code.
const (
	// CodeGeneric is used when a handler fails.
	CodeGeneric = "ERR"

	// CodeBadRequest is used when we cannot parse a call.
	CodeBadRequest = "BAD_REQUEST"
)

// Response is the response to a [*Call].
type Response struct {
	// ID is the ID of the call.
	ID string `json:"id"`

	// Status is one of StatusSuccess, StatusError, StatusNotImplemented.
	Status string `json:"status"`

	// Value is the value returned on success.
	Value any `json:"value"`

	// Code is the error code when Status is StatusError.
	Code string `json:"code,omitempty"`

	// Message is the error message when Status is StatusError.
	Message string `json:"message,omitempty"`
}

// ErrNotImplemented is the error returned by Response.Err when
// the method or the channel does not exist.
var ErrNotImplemented = errors.New("bridge: not implemented")

// Error is the error returned by Response.Err when a call failed.
type Error struct {
	Code    string
	Message string
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("bridge: %s: %s", e.Code, e.Message)
}

// Err converts the response status to an error. It returns nil on success.
func (r *Response) Err() error {
	switch r.Status {
	case StatusSuccess:
		return nil
	case StatusNotImplemented:
		return ErrNotImplemented
	default:
		return &Error{Code: r.Code, Message: r.Message}
	}
}

// NewSuccess creates a successful response.
func NewSuccess(call *Call, value any) *Response {
	return &Response{ID: call.ID, Status: StatusSuccess, Value: value}
}

// NewError creates an error response.
func NewError(call *Call, code string, err error) *Response {
	return &Response{ID: call.ID, Status: StatusError, Code: code, Message: err.Error()}
}

// NewNotImplemented creates a not implemented response.
func NewNotImplemented(call *Call) *Response {
	return &Response{ID: call.ID, Status: StatusNotImplemented}
}
