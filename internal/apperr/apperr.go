package apperr

import "fmt"

// AppError carries an HTTP-ish status so handlers can map business failures
// without string matching.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}
