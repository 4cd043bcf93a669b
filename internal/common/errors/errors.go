// Package errors provides the coded error taxonomy shared by the dialogue
// flows. Input errors are always recovered locally by re-prompting; the
// remaining codes abort the current flow back to the main menu.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input errors: recovered by re-prompting the same question.
	ErrCodeInputEmpty           ErrorCode = "INPUT_EMPTY"
	ErrCodeInputInvalidCategory ErrorCode = "INPUT_INVALID_CATEGORY"
	ErrCodeInputNotNumeric      ErrorCode = "INPUT_NOT_NUMERIC"
	ErrCodeInputUnmatchedID     ErrorCode = "INPUT_UNMATCHED_ID"

	// Flow-terminating conditions.
	ErrCodeEmptyResult        ErrorCode = "EMPTY_RESULT"
	ErrCodeCollaboratorFailed ErrorCode = "COLLABORATOR_FAILED"
	ErrCodeStoreUnavailable   ErrorCode = "STORE_UNAVAILABLE"
)

// AssistError represents a structured application error.
type AssistError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AssistError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AssistError) Unwrap() error {
	return e.Cause
}

// New creates an AssistError with the given code and message.
func New(code ErrorCode, message string) *AssistError {
	return &AssistError{Code: code, Message: message}
}

// Wrap creates an AssistError wrapping an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *AssistError {
	return &AssistError{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the error code, or "" for non-taxonomy errors.
func CodeOf(err error) ErrorCode {
	var ae *AssistError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsInput reports whether err is a locally recoverable input error.
func IsInput(err error) bool {
	switch CodeOf(err) {
	case ErrCodeInputEmpty, ErrCodeInputInvalidCategory, ErrCodeInputNotNumeric, ErrCodeInputUnmatchedID:
		return true
	}
	return false
}
