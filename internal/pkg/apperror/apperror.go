package apperror

import "github.com/pickleclub/reservation-backend/internal/pkg/errcode"

// AppError is a custom error type that carries an HTTP status code and the
// symbolic error code exposed to API clients.
type AppError struct {
	Status  int          // HTTP status code (e.g., 400, 404)
	Code    errcode.Code // Symbolic code, part of the API contract
	Message string       // User-facing error message
	Err     error        // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status and symbolic code.
// The message defaults to the code's entry in the default message table.
func New(status int, code errcode.Code) *AppError {
	msg, ok := errcode.Message(code)
	if !ok {
		msg = string(code)
	}
	return &AppError{
		Status:  status,
		Code:    code,
		Message: msg,
	}
}

// WithMessage creates a new AppError with an explicit message.
func WithMessage(status int, code errcode.Code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code errcode.Code) *AppError {
	e := New(status, code)
	e.Err = err
	return e
}
