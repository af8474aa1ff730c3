package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrBusy       = errors.New("order submission already in progress")
	ErrSubmission = errors.New("order submission failed")
	ErrLoad       = errors.New("failed to load servers")
)

// Fallback messages used when the backend does not supply a reason.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgSubmissionFailed   = "Order creation failed"
	MsgLoadFailed         = "Failed to load servers"
)

// ValidationError lists the draft fields that failed local checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// AuthError is returned when login or registration is rejected or cannot reach
// the auth endpoint.
type AuthError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string        { return e.Message }
func (e *AuthError) Unwrap() error        { return e.Err }
func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// SubmissionError is returned when the provisioning endpoint rejects an order or
// the request fails in transit.
type SubmissionError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string        { return e.Message }
func (e *SubmissionError) Unwrap() error        { return e.Err }
func (e *SubmissionError) Is(target error) bool { return target == ErrSubmission }

// LoadError is returned when the order list cannot be fetched.
type LoadError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string        { return e.Message }
func (e *LoadError) Unwrap() error        { return e.Err }
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// MessageOr returns msg unless it is blank, in which case fallback is used.
func MessageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
