package app

import (
	"errors"
	"fmt"
)

// ErrInvalid matches every error caused by bad caller input, so adapters can
// tell it apart from storage failures with errors.Is.
var ErrInvalid = errors.New("invalid input")

type invalidError struct{ msg string }

func (e *invalidError) Error() string { return e.msg }

func (e *invalidError) Is(target error) bool { return target == ErrInvalid }

func invalidf(format string, args ...any) error {
	return &invalidError{msg: fmt.Sprintf(format, args...)}
}
