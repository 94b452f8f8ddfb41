// Package errors provides error handling for blockpress.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrRemoteGone) {
//	    // remote document was deleted; offer to re-create on push
//	}
//
// The codec and the sync state machine never return errors: decode, encode,
// and classify are total functions. Sentinels below belong to the store and
// transport layers.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Common sentinel errors for use across blockpress.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a document or block does not exist locally
	ErrNotFound = New("not found")

	// ErrRemoteGone indicates the remote copy of a document was deleted
	// or its remote id no longer resolves
	ErrRemoteGone = New("remote document gone")

	// ErrUnauthorized indicates the remote rejected our credentials
	ErrUnauthorized = New("unauthorized")

	// ErrConflict indicates the remote rejected an update because the
	// server-side copy changed underneath us
	ErrConflict = New("remote conflict")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsRemoteGoneError checks if an error is or wraps ErrRemoteGone.
func IsRemoteGoneError(err error) bool {
	return err != nil && Is(err, ErrRemoteGone)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
