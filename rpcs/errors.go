package rpcs

import (
	"context"
	"fmt"
	"net/http"

	errs "github.com/593413198/bst/errors"
	"github.com/593413198/bst/logs"
)

// HttpError holds the necessary information to return an error when
// using the http protocol
type HttpError struct {
	// Cause of the creation of this HttpError instance
	Cause error

	// StatusCode is the HTTP status code that defines the error cause
	StatusCode int

	// Message is the human-readable string that defines the error cause
	Message string
}

// Log implementation of logs.Loggable
func (e *HttpError) Log(fields logs.Fields) {
	fields.Add("status_code", e.StatusCode)

	if e.Cause != nil {
		switch cause := e.Cause.(type) {
		case *errs.Error:
			cause.Log(fields)
		default:
			fields.Add("description", cause.Error())
		}
	}
}

// Error is the implementation of go's error interface for Error
func (e *HttpError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s with status code %d", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s with status code %d", e.Cause.Error(), e.StatusCode)
}

// Unwrap returns the cause of the error
func (e *HttpError) Unwrap() error {
	return e.Cause
}

// body returns the payload sent to the client. Coded errors keep their
// code and description, anything else is reported with the generic
// message so internal details do not leak
func (e *HttpError) body() errs.Error {
	if cause, ok := e.Cause.(*errs.Error); ok {
		return *cause
	}

	return errs.Error{ErrorCode: -1, Description: e.Message}
}

// MakeHttpError makes a new http error
func MakeHttpError(ctx context.Context, err error, statusCode int, msg string) *HttpError {
	return &HttpError{
		Cause:      err,
		StatusCode: statusCode,
		Message:    msg,
	}
}

// HttpBadRequest returns an HTTP bad request error
func HttpBadRequest(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusBadRequest, "Bad Request")
}

// HttpNotFound returns an HTTP not found error
func HttpNotFound(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusNotFound, "Not Found")
}

// HttpMethodNotAllowed returns an HTTP method not allowed error
func HttpMethodNotAllowed(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// HttpInternalServerError returns an HTTP internal server error
func HttpInternalServerError(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusInternalServerError, "Internal Server Error")
}
