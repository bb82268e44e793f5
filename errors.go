package forwardlist

import (
	"errors"
	"fmt"
)

// Contract violations. These are raised with panic; callers must not rely on
// them being detected.
var (
	ErrPastEnd     = errors.New("forwardlist: iterator at end position")
	ErrBeforeBegin = errors.New("forwardlist: dereference of before-begin iterator")
	ErrEmptyList   = errors.New("forwardlist: pop from empty list")
	ErrNoSuccessor = errors.New("forwardlist: no element after position")
)

// ErrCopy classifies failures returned while copying elements.
var ErrCopy = errors.New("forwardlist: element copy failed")

// CopyError reports which source element could not be copied.
type CopyError struct {
	Index int
	Err   error
}

func (e *CopyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v at index %d: %v", ErrCopy, e.Index, e.Err)
}

func (e *CopyError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrCopy, e.Err}
}
