package models

import (
	"errors"
	"fmt"
)

// Common error types
var (
	ErrNotFound = errors.New("resource not found")
	ErrNoInput  = errors.New("request carries no data")
)

// Error codes carried by AppError
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
)

// DefaultErrorName is reported to clients when an error has no more specific name
const DefaultErrorName = "Error"

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Name    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    CodeInvalidInput,
		Name:    DefaultErrorName,
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    CodeNotFound,
		Name:    DefaultErrorName,
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrMissingInput creates an invalid request error for an absent request body
func ErrMissingInput(message string) error {
	return &AppError{
		Code:    CodeInvalidRequest,
		Name:    DefaultErrorName,
		Message: message,
		Err:     ErrNoInput,
	}
}
