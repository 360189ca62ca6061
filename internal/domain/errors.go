package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies failures so the HTTP layer can pick a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindRateLimited
	KindGeneration
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindGeneration:
		return "generation"
	default:
		return "internal"
	}
}

// Error is the error type returned by services. Message is safe to show to
// API clients, Err keeps the underlying cause for logs.
type Error struct {
	Kind      ErrorKind
	Message   string
	Err       error
	Retryable bool
	// RetryAfter is a hint for retryable errors, zero when unknown.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func RateLimited(msg string, retryAfter time.Duration) *Error {
	return &Error{Kind: KindRateLimited, Message: msg, Retryable: true, RetryAfter: retryAfter}
}

// Generation wraps a failure of the exercise generator. The message always
// starts with "Failed to generate exercises from AI".
func Generation(cause error) *Error {
	e := &Error{
		Kind:    KindGeneration,
		Message: "Failed to generate exercises from AI",
		Err:     cause,
	}
	var inner *Error
	if errors.As(cause, &inner) {
		e.Message = fmt.Sprintf("%s: %s", e.Message, inner.Message)
		e.Retryable = inner.Retryable
	} else if cause != nil {
		e.Message = fmt.Sprintf("%s: %s", e.Message, cause.Error())
	}
	return e
}

// GeneratorFailure is raised inside the generator before the orchestrator
// wraps it with Generation.
func GeneratorFailure(msg string, cause error, retryable bool) *Error {
	return &Error{Kind: KindGeneration, Message: msg, Err: cause, Retryable: retryable}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a domain error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
