package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound     = errors.New("not found")
	ErrNoTimeline   = errors.New("no timeline")
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "timeline", "track", "config"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NoTimelineError indicates no timeline file was found or given.
// This is the one fatal precondition: nothing runs without a timeline.
type NoTimelineError struct {
	Path string
}

func (e *NoTimelineError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("no timeline found at %s (run 'camtint init')", e.Path)
	}
	return "no timeline found (run 'camtint init' or pass --timeline)"
}

func (e *NoTimelineError) Unwrap() error {
	return ErrNoTimeline
}

// Helper constructors for common cases

func TimelineNotFound(path string) error {
	return &NotFoundError{Resource: "timeline", ID: path}
}

func UnknownColor(name string) error {
	return &ValidationError{Field: "color", Message: fmt.Sprintf("%q is not a palette color", name)}
}

func InvalidAngle(value string) error {
	return &ValidationError{Field: "angle", Message: fmt.Sprintf("%q is not a positive integer", value)}
}

func InvalidMode(mode string) error {
	return &ValidationError{Field: "mode", Message: fmt.Sprintf("%q is not one of auto, manual, individual", mode)}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNoTimeline checks if an error is a missing-timeline error.
func IsNoTimeline(err error) bool {
	return errors.Is(err, ErrNoTimeline)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
