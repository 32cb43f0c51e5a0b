package domain

import (
	"errors"
	"fmt"
)

// Configuration errors. They surface at Library or Registry construction,
// never during a run.
var (
	ErrEmptyRuleName    = errors.New("rule name is empty")
	ErrDuplicateRule    = errors.New("duplicate rule name")
	ErrEmptyConditions  = errors.New("rule has no conditions")
	ErrEmptyConclusions = errors.New("rule has no conclusions")
	ErrInvalidPair      = errors.New("contradiction pair needs two distinct non-empty facts")
)

// ConfigError ties a configuration failure to the rule or pair that caused it.
type ConfigError struct {
	Subject string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Subject, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple configuration failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap lets errors.Is and errors.As see every collected error.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ConfigErrors returns all collected errors if err is an AggregateError.
// Otherwise returns nil.
func ConfigErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
