package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

const (
	// MaxInputLength is the longest text a channel field accepts ("0.25", "1.00").
	MaxInputLength = 4

	// MaxChannelValue is the inclusive upper bound for a typed channel value.
	MaxChannelValue = 1.0
)

// Reason describes why a typed channel value was rejected.
type Reason int

const (
	ReasonTooLong Reason = iota + 1
	ReasonNotANumber
	ReasonAboveMaximum
)

func (r Reason) String() string {
	switch r {
	case ReasonTooLong:
		return "too long"
	case ReasonNotANumber:
		return "not a number"
	case ReasonAboveMaximum:
		return "above maximum"
	default:
		return "unknown"
	}
}

// InvalidChannelInputError is returned when text typed into a channel
// field cannot be used as a channel value.
type InvalidChannelInputError struct {
	Input  string
	Reason Reason
}

func (e *InvalidChannelInputError) Error() string {
	return fmt.Sprintf("invalid channel input %q: %s", e.Input, e.Reason)
}

// IsInvalidChannelInput checks if an error is (or wraps) an InvalidChannelInputError
func IsInvalidChannelInput(err error) (*InvalidChannelInputError, bool) {
	if err == nil {
		return nil, false
	}
	var inputErr *InvalidChannelInputError
	ok := errors.As(err, &inputErr)
	return inputErr, ok
}

// ParseChannelInput validates raw text from a channel field and returns its value.
// It only works with raw strings, no Fyne types, so the editor and the UI can share it.
//
// Checks run in this order and the first failure wins:
//  1. more than MaxInputLength characters
//  2. not a finite floating-point number
//  3. greater than MaxChannelValue
//
// There is deliberately no lower bound: "-0.5" passes.
func ParseChannelInput(raw string) (float64, error) {
	if utf8.RuneCountInString(raw) > MaxInputLength {
		return 0, &InvalidChannelInputError{Input: raw, Reason: ReasonTooLong}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &InvalidChannelInputError{Input: raw, Reason: ReasonNotANumber}
	}

	if value > MaxChannelValue {
		return 0, &InvalidChannelInputError{Input: raw, Reason: ReasonAboveMaximum}
	}

	return value, nil
}

// FormatChannel renders a channel value with exactly two decimals.
// This is the canonical form shown in labels and text fields.
func FormatChannel(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
