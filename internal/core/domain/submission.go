package domain

import "errors"

// SubmissionState is the lifecycle state of one order dialog.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// validSubmissionTransitions defines the allowed state machine transitions.
// Reset (back to Idle) is always allowed and not listed here.
var validSubmissionTransitions = map[SubmissionState][]SubmissionState{
	StateIdle:       {StateValidating},
	StateValidating: {StateSubmitting, StateIdle},
	StateSubmitting: {StateSucceeded, StateFailed},
	StateSucceeded:  {StateValidating},
	StateFailed:     {StateValidating},
}

var ErrInvalidTransition = errors.New("invalid submission state transition")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s SubmissionState) CanTransitionTo(next SubmissionState) bool {
	for _, allowed := range validSubmissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the attempt has finished.
func (s SubmissionState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}
