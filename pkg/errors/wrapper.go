package errors

import (
	"fmt"
	"net/http"
)

// NotFound creates a not found error with a client-facing message
func NotFound(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       ErrNotFound.Code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// WrapNotFound wraps the cause of a not found condition
func WrapNotFound(err error, message string) *AppError {
	appErr := NotFound(message)
	appErr.Err = err
	return appErr
}

// Processing wraps a processing failure. The cause text is appended to the message
// because clients receive it verbatim.
func Processing(err error, message string) *AppError {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %v", message, err)
	}
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrProcessing.Code,
		Message:    msg,
		Err:        err,
		StatusCode: http.StatusInternalServerError,
	}
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrValidation.Code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// RateLimited creates a rate limit error
func RateLimited() *AppError {
	return &AppError{
		Type:       ErrorTypeRateLimit,
		Code:       ErrRateLimit.Code,
		Message:    ErrRateLimit.Message,
		StatusCode: http.StatusTooManyRequests,
	}
}

// WrapExternal wraps a backing service failure
func WrapExternal(err error, service, message string) *AppError {
	appErr := &AppError{
		Type:       ErrorTypeExternal,
		Code:       ErrExternalService.Code,
		Message:    message,
		Err:        err,
		StatusCode: http.StatusServiceUnavailable,
	}
	return appErr.WithDetail("service", service)
}
