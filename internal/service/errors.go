package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks structurally invalid input; the boundary maps it
	// to a client error.
	ErrValidation = errors.New("validation failed")

	ErrIDRequired = fmt.Errorf("%w: id is required", ErrValidation)
	ErrReaderNil  = fmt.Errorf("%w: reader is nil", ErrValidation)

	// ErrNotFound is returned when a referenced identifier is absent.
	ErrNotFound = errors.New("not found")
)
