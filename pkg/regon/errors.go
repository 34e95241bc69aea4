package regon

import (
	"errors"
	"fmt"

	"github.com/sirosfoundation/go-regon/pkg/bir"
)

// Error kinds. Every error returned by Client matches exactly one of them
// with errors.Is.
var (
	// ErrInvalidArgument is returned for input rejected before any network call
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEntityNotFound is returned when the registry has no matching entity
	ErrEntityNotFound = errors.New("entity not found")
	// ErrServiceCallFailed is returned for any other remote or transport failure
	ErrServiceCallFailed = errors.New("service call failed")
)

// notFoundCode is the BIR error code meaning "no data found"
const notFoundCode = "4"

// InvalidArgumentError describes a rejected identifier, report type or option
type InvalidArgumentError struct {
	Kind    string
	Value   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is not valid %s", e.Value, e.Kind)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError carries the registry's message for error code 4
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return ErrEntityNotFound.Error()
	}
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}

// ServiceError is a failed call. Message is the remote text, unchanged.
// Code is the SOAP fault code for transport failures and empty for errors
// reported inside the result document.
type ServiceError struct {
	Message string
	Code    string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return ErrServiceCallFailed.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrServiceCallFailed
}

// serviceFailure converts a transport adapter error into a *ServiceError
func serviceFailure(err error) error {
	if fault, ok := bir.GetFault(err); ok {
		return &ServiceError{Message: fault.Reason, Code: fault.Code, Err: fault}
	}
	return &ServiceError{Message: err.Error(), Err: err}
}

// remoteError maps an error code found in a result document
func remoteError(code, message string) error {
	if code == notFoundCode {
		return &NotFoundError{Message: message}
	}
	return &ServiceError{Message: message}
}
