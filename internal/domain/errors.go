package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRate is matched by every RateError
	ErrInvalidRate         = errors.New("invalid rate")
	ErrUnknownScenario     = errors.New("unknown scenario")
	ErrUnknownSubscription = errors.New("unknown subscription type")
	ErrNegativeWeight      = errors.New("negative distribution weight")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// RateError reports a rate or density outside its allowed domain
type RateError struct {
	Field   string
	Value   float64
	Message string
}

func (e *RateError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

func (e *RateError) Unwrap() error {
	return ErrInvalidRate
}

// NewRateError builds a RateError for field
func NewRateError(field string, value float64, message string) *RateError {
	return &RateError{Field: field, Value: value, Message: message}
}
