// Package apperr defines application errors exposed to API clients.
package apperr

import "github.com/swaggest/usecase/status"

// Application error codes.
const (
	CodeAlreadyExists = 68
	CodeNotFound      = 76
	CodeGeneral       = 96
)

// Error carries application code and canonical status of a domain failure.
type Error struct {
	Code       int
	StatusCode status.Code
	Err        error
}

// Error implements error.
func (e Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

// AppErrCode returns application error code.
func (e Error) AppErrCode() int {
	return e.Code
}

// Status returns canonical status code.
func (e Error) Status() status.Code {
	return e.StatusCode
}

// Is matches canonical status code.
func (e Error) Is(target error) bool {
	return target == e.StatusCode
}

// NotFound wraps error as missing resource.
func NotFound(err error) error {
	return Error{Code: CodeNotFound, StatusCode: status.NotFound, Err: err}
}

// AlreadyExists wraps error as resource conflict.
func AlreadyExists(err error) error {
	return Error{Code: CodeAlreadyExists, StatusCode: status.AlreadyExists, Err: err}
}

// Invalid wraps error as rejected input.
func Invalid(err error) error {
	return Error{Code: CodeGeneral, StatusCode: status.InvalidArgument, Err: err}
}
