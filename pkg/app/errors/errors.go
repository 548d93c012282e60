// Package errors classifies failures surfaced by the HTTP API so they can be
// rendered with a stable status code and a client-safe message.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used for request tracking when no error occurred.
	CategoryNoError Category = iota
	// CategoryDataError The client sent an invalid parameter, filter or payload.
	CategoryDataError
	// CategoryUnauthorized The client did not present valid credentials
	CategoryUnauthorized
	// CategoryResourceNotFound The requested vault or entry does not exist
	CategoryResourceNotFound
	// CategoryRateLimited The client sent too many requests in a given amount of time
	CategoryRateLimited
	// CategoryDependencyFailure The upstream vault data service failed
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryConnectionTimeout The upstream vault data service timed out
	CategoryConnectionTimeout
)

var categoryNames = map[Category]string{
	CategoryNoError:           "CategoryNoError",
	CategoryDataError:         "CategoryDataError",
	CategoryUnauthorized:      "CategoryUnauthorized",
	CategoryResourceNotFound:  "CategoryResourceNotFound",
	CategoryRateLimited:       "CategoryRateLimited",
	CategoryDependencyFailure: "CategoryDependencyFailure",
	CategoryGeneralError:      "CategoryGeneralError",
	CategoryConnectionTimeout: "CategoryConnectionTimeout",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "CategoryGeneralError"
}

// ServiceError carries a category, the message shown to the client and the
// underlying cause, which is only ever logged.
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

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err is a server side failure rather than a client mistake.
// Errors that are not a ServiceError count as internal.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category >= CategoryDependencyFailure
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

// ResourceNotFoundError returns an error with category CategoryResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "not found: "+message)
}

// BadRequestError returns an error with category CategoryDataError.
// message is returned to the user, err is only logged.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// TooManyRequestsError returns an error with category CategoryRateLimited
func TooManyRequestsError(message string) error {
	return newError(CategoryRateLimited, nil, message, "rate limited: "+message)
}

// DependencyFailureError returns an error with category CategoryDependencyFailure.
// message is returned to the user, err is only logged.
func DependencyFailureError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: "+message)
}

// TimeoutError returns an error with category CategoryConnectionTimeout
func TimeoutError(err error, message string) error {
	return newError(CategoryConnectionTimeout, err, message, "timeout: "+message)
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
