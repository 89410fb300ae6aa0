package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrBadDiagram = errors.New("bad diagram")
	ErrFetch      = errors.New("diagram fetch failed")
)

// NewKind tags an operation with an error kind.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags an operation and kind around an underlying cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Wrap tags an operation around an underlying cause.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
