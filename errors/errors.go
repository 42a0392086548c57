package errors

import "github.com/593413198/bst/logs"

const (
	// CodeKeyNotFound is returned when an operation targets a key
	// that is not present in the tree
	CodeKeyNotFound = 1000 + iota

	// CodeEmptyTree is returned by queries that need at least one node
	CodeEmptyTree

	// CodeInvalidKey is returned when a key cannot be parsed as an integer
	CodeInvalidKey

	// CodeInvalidOrder is returned for an unknown traversal order
	CodeInvalidOrder
)

// Error is the response returned by the server when it fails
// to satisfy a request
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates a new error with the given code
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is works across wrapped copies
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.ErrorCode == e.ErrorCode
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
