package cnab

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when the CNAB file cannot be read or decoded.
	ErrSourceUnavailable = errors.New("cnab: source unavailable")

	// ErrInvalidRange is matched by every *RangeError.
	ErrInvalidRange = errors.New("cnab: invalid range")

	// ErrInvalidSegment is returned when a segment code is not a single character.
	ErrInvalidSegment = errors.New("cnab: segment code must be a single character")

	// ErrEmptyName is returned by QueryByName for a blank name.
	ErrEmptyName = errors.New("cnab: name must not be empty")

	// ErrUnknownEncoding is returned for a charset name Decode does not support.
	ErrUnknownEncoding = errors.New("cnab: unknown encoding")
)

// RangeError describes a rejected [from, to] column range.
type RangeError struct {
	From   int
	To     int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cnab: invalid range [%d,%d]: %s", e.From, e.To, e.Reason)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// validateRange checks a 1-indexed inclusive column range.
func validateRange(from, to int) error {
	switch {
	case from < 1:
		return &RangeError{From: from, To: to, Reason: "from must be >= 1"}
	case to < 1:
		return &RangeError{From: from, To: to, Reason: "to must be >= 1"}
	case from > to:
		return &RangeError{From: from, To: to, Reason: "from must not be greater than to"}
	}
	return nil
}
