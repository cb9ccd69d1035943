package timecalc

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput    = errors.New("timer input is empty")
	ErrInvalidFormat = errors.New("timer input is not a valid time")
)

// InputError records which step rejected which raw input.
type InputError struct {
	Op    string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func wrapInputErr(op, input string, err error) error {
	if err == nil {
		return nil
	}
	return &InputError{Op: op, Input: input, Err: err}
}
