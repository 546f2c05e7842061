// Package errors provides the error types shared across the back office.
package errors

import (
	"fmt"
	"net/http"
)

// OfficeError is the base interface for all back-office errors.
type OfficeError interface {
	error
	HTTPStatus() int
	Code() string
}

// BaseError is the base implementation of OfficeError
type BaseError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"code"`
	Details    string `json:"details,omitempty"`
}

func (e *BaseError) Error() string {
	return e.Message
}

func (e *BaseError) HTTPStatus() int {
	return e.StatusCode
}

func (e *BaseError) Code() string {
	return e.ErrorCode
}

// TransportError represents a network-level failure reaching the property API.
type TransportError struct {
	BaseError
	OriginalError error
}

func NewTransportError(original error) *TransportError {
	return &TransportError{
		BaseError: BaseError{
			Message:    fmt.Sprintf("property API unreachable: %v", original),
			StatusCode: http.StatusBadGateway,
			ErrorCode:  "TRANSPORT_ERROR",
		},
		OriginalError: original,
	}
}

// UpstreamError represents a non-2xx response from the property API.
// The message carries whatever the API put in its error body.
type UpstreamError struct {
	BaseError
	Upstream int
}

func NewUpstreamError(status int, message string) *UpstreamError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &UpstreamError{
		BaseError: BaseError{
			Message:    message,
			StatusCode: status,
			ErrorCode:  "UPSTREAM_ERROR",
		},
		Upstream: status,
	}
}

// ValidationError represents a client-side validation failure on a form field.
type ValidationError struct {
	BaseError
	Field string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		BaseError: BaseError{
			Message:    message,
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "VALIDATION_ERROR",
		},
		Field: field,
	}
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	BaseError
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{
		BaseError: BaseError{
			Message:    fmt.Sprintf("%s not found", resource),
			StatusCode: http.StatusNotFound,
			ErrorCode:  "NOT_FOUND",
		},
		Resource: resource,
	}
}

// ConflictError represents a conflict error (e.g., duplicate email)
type ConflictError struct {
	BaseError
	Resource string
}

func NewConflictError(resource, message string) *ConflictError {
	if message == "" {
		message = fmt.Sprintf("%s already exists", resource)
	}
	return &ConflictError{
		BaseError: BaseError{
			Message:    message,
			StatusCode: http.StatusConflict,
			ErrorCode:  "CONFLICT",
		},
		Resource: resource,
	}
}

// BadRequestError represents a generic bad request error
type BadRequestError struct {
	BaseError
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{
		BaseError: BaseError{
			Message:    message,
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "BAD_REQUEST",
		},
	}
}

// ToHTTPError converts any error to an appropriate HTTP response
func ToHTTPError(err error) (int, map[string]interface{}) {
	if err == nil {
		return http.StatusOK, nil
	}

	if oe, ok := err.(OfficeError); ok {
		return oe.HTTPStatus(), map[string]interface{}{
			"error":   oe.Code(),
			"message": oe.Error(),
		}
	}

	return http.StatusInternalServerError, map[string]interface{}{
		"error":   "INTERNAL_ERROR",
		"message": "internal server error",
	}
}
