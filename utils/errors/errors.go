// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Combine merges any number of errors into one, dropping nils.
func Combine(errs ...error) error {
	return multierr.Combine(errs...)
}

// Errors returns the individual errors held by a combined error.
func Errors(err error) []error {
	return multierr.Errors(err)
}

func formatMessage(message string, a ...any) string {
	if len(a) == 0 {
		return message
	}
	return fmt.Sprintf(message, a...)
}

func joinMessage(message string, inner error) string {
	if inner == nil || inner.Error() == "" {
		return message
	} else if message == "" {
		return inner.Error()
	}
	return fmt.Sprintf("%v; %v", message, inner.Error())
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	inner   error
	message string
}

func (e *notFoundError) Error() string { return joinMessage(e.message, e.inner) }

func (e *notFoundError) Unwrap() error { return e.inner }

func NotFoundError(message string, a ...any) error {
	return &notFoundError{message: formatMessage(message, a...)}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{inner: err, message: formatMessage(message, a...)}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// configError
// ///////////////////////////////////////////////////////////////////////////

type configError struct {
	inner   error
	message string
}

func (e *configError) Error() string { return joinMessage(e.message, e.inner) }

func (e *configError) Unwrap() error { return e.inner }

// ConfigError reports a missing or malformed backend option.
func ConfigError(message string, a ...any) error {
	return &configError{message: formatMessage(message, a...)}
}

func WrapWithConfigError(err error, message string, a ...any) error {
	return &configError{inner: err, message: formatMessage(message, a...)}
}

func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *configError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// clusterUnavailableError
// ///////////////////////////////////////////////////////////////////////////

type clusterUnavailableError struct {
	inner   error
	message string
}

func (e *clusterUnavailableError) Error() string { return joinMessage(e.message, e.inner) }

func (e *clusterUnavailableError) Unwrap() error { return e.inner }

// ClusterUnavailableError reports a transport failure or a 5xx that outlasted retries.
func ClusterUnavailableError(message string, a ...any) error {
	return &clusterUnavailableError{message: formatMessage(message, a...)}
}

func WrapWithClusterUnavailableError(err error, message string, a ...any) error {
	return &clusterUnavailableError{inner: err, message: formatMessage(message, a...)}
}

func IsClusterUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *clusterUnavailableError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// clusterRequestError
// ///////////////////////////////////////////////////////////////////////////

type clusterRequestError struct {
	statusCode int
	code       string
	target     string
	message    string
}

func (e *clusterRequestError) Error() string {
	msg := fmt.Sprintf("cluster request failed with status %d", e.statusCode)
	if e.code != "" {
		msg += fmt.Sprintf(", code %s", e.code)
	}
	if e.message != "" {
		msg += ": " + e.message
	}
	if e.target != "" {
		msg += fmt.Sprintf(" (target %s)", e.target)
	}
	return msg
}

// StatusCode returns the HTTP status of the failed request.
func (e *clusterRequestError) StatusCode() int { return e.statusCode }

// Code returns the cluster's error code, if any.
func (e *clusterRequestError) Code() string { return e.code }

// ClusterRequestError is a permanent (non-retryable) failure returned by the cluster.
func ClusterRequestError(statusCode int, code, target, message string) error {
	return &clusterRequestError{statusCode: statusCode, code: code, target: target, message: message}
}

func IsClusterRequestError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *clusterRequestError
	return errors.As(err, &errPtr)
}

// ClusterErrorCode returns the cluster error code carried by err, or "" if err is not a cluster request error.
func ClusterErrorCode(err error) string {
	var errPtr *clusterRequestError
	if errors.As(err, &errPtr) {
		return errPtr.code
	}
	return ""
}

// ClusterStatusCode returns the HTTP status carried by err, or 0 if err is not a cluster request error.
func ClusterStatusCode(err error) int {
	var errPtr *clusterRequestError
	if errors.As(err, &errPtr) {
		return errPtr.statusCode
	}
	return 0
}

// ///////////////////////////////////////////////////////////////////////////
// svmNotFoundError
// ///////////////////////////////////////////////////////////////////////////

type svmNotFoundError struct {
	svm string
}

func (e *svmNotFoundError) Error() string { return fmt.Sprintf("SVM %s not found", e.svm) }

func SVMNotFoundError(svm string) error {
	return &svmNotFoundError{svm: svm}
}

func IsSVMNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *svmNotFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// driverNotInitializedError
// ///////////////////////////////////////////////////////////////////////////

type driverNotInitializedError struct {
	message string
}

func (e *driverNotInitializedError) Error() string { return e.message }

// DriverNotInitializedError means the router has no client for a target SVM.
func DriverNotInitializedError(message string, a ...any) error {
	return &driverNotInitializedError{message: formatMessage(message, a...)}
}

func IsDriverNotInitializedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *driverNotInitializedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	message string
}

func (e *invalidInputError) Error() string { return e.message }

func InvalidInputError(message string, a ...any) error {
	return &invalidInputError{message: formatMessage(message, a...)}
}

func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidInputError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// provisioningConflictError
// ///////////////////////////////////////////////////////////////////////////

type provisioningConflictError struct {
	message string
}

func (e *provisioningConflictError) Error() string { return e.message }

// ProvisioningConflictError means a resource exists but in a state that differs from the requested one.
func ProvisioningConflictError(message string, a ...any) error {
	return &provisioningConflictError{message: formatMessage(message, a...)}
}

func IsProvisioningConflictError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *provisioningConflictError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedIPPatternError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedIPPatternError struct {
	message string
}

func (e *unsupportedIPPatternError) Error() string { return e.message }

func UnsupportedIPPatternError(message string, a ...any) error {
	return &unsupportedIPPatternError{message: formatMessage(message, a...)}
}

func IsUnsupportedIPPatternError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedIPPatternError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// nodeNotFoundError
// ///////////////////////////////////////////////////////////////////////////

type nodeNotFoundError struct {
	message string
}

func (e *nodeNotFoundError) Error() string { return e.message }

func NodeNotFoundError(message string, a ...any) error {
	return &nodeNotFoundError{message: formatMessage(message, a...)}
}

func IsNodeNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *nodeNotFoundError
	return errors.As(err, &errPtr)
}
