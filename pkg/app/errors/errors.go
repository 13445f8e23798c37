// Package errors contains the service error type returned by the HTTP facing services
// and the helpers to build and inspect it.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a service error.
type Category int

const (
	// CategoryNoError marks a successful call.
	CategoryNoError Category = iota
	// CategoryDataError is a client error: invalid payload, parameters or headers.
	CategoryDataError
	// CategoryUnauthorized means the caller could not be authenticated.
	CategoryUnauthorized
	// CategoryForbidden means the caller may not perform the operation.
	CategoryForbidden
	// CategoryResourceNotFound means the resource does not exist or is not visible to the caller.
	CategoryResourceNotFound
	// CategoryDataConflict means the request collides with existing data.
	CategoryDataConflict
	// CategoryDependencyFailure means an upstream service failed.
	CategoryDependencyFailure
	// CategoryGeneralError means the service failed in an unexpected way.
	CategoryGeneralError
)

var categoryNames = map[Category]string{
	CategoryNoError:           "CategoryNoError",
	CategoryDataError:         "CategoryDataError",
	CategoryUnauthorized:      "CategoryUnauthorized",
	CategoryForbidden:         "CategoryForbidden",
	CategoryResourceNotFound:  "CategoryResourceNotFound",
	CategoryDataConflict:      "CategoryDataConflict",
	CategoryDependencyFailure: "CategoryDependencyFailure",
	CategoryGeneralError:      "CategoryGeneralError",
}

var categoryStatus = map[Category]int{
	CategoryDataError:         http.StatusBadRequest,
	CategoryUnauthorized:      http.StatusUnauthorized,
	CategoryForbidden:         http.StatusForbidden,
	CategoryResourceNotFound:  http.StatusNotFound,
	CategoryDataConflict:      http.StatusConflict,
	CategoryDependencyFailure: http.StatusBadGateway,
	CategoryGeneralError:      http.StatusInternalServerError,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "CategoryGeneralError"
}

// ServiceError is the error type services hand to the HTTP layer. Message is
// what the client sees; Err is the cause and is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is matches a target error carrying the same message.
func (err ServiceError) Is(target error) bool {
	return target != nil && err.Message == target.Error()
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if code, ok := categoryStatus[err.Category]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err is not a client-side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error".
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
// message is returned to the user, err is logged.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// BadRequestError returns an error with category DataError.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// ForbiddenError returns an error with category Forbidden.
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "request forbidden")
}

// UnAuthorizedError returns an error with category Unauthorized.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// ConflictError returns an error with category DataConflict.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// DependencyError returns an error with category DependencyFailure.
func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: "+message)
}
