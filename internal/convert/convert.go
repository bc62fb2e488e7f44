// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a year count into days, hours, minutes, and seconds.
// The year value arrives untyped (a command-line string, a YAML scalar) and
// is coerced explicitly; a value that is not a finite number is rejected
// with an *InvalidYearError rather than converted.
package convert

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/pdiddy/timeconv/pkg/types"
)

const (
	DaysPerYear      = 365
	HoursPerDay      = 24
	MinutesPerHour   = 60
	SecondsPerMinute = 60
)

// ErrInvalidYearValue is matched by every *InvalidYearError.
var ErrInvalidYearValue = errors.New("invalid year value")

var (
	errNoValue   = errors.New("no value")
	errNotFinite = errors.New("not a finite number")
	errBoolean   = errors.New("booleans are not year counts")
	errOverflow  = errors.New("out of range: derived seconds overflow float64")
)

// InvalidYearError reports a year value that could not be read as a number.
type InvalidYearError struct {
	// Value is the offending input as received.
	Value any
	// Err is the underlying coercion failure.
	Err error
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("expecting a number for years, got %v, a %s: %v", e.Value, TypeName(e.Value), e.Err)
}

func (e *InvalidYearError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidYearValue) hold.
func (e *InvalidYearError) Is(target error) bool { return target == ErrInvalidYearValue }

// TypeName returns the Go type name of v, or "<nil>" for a nil value.
func TypeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// ParseYears coerces v to a year count. Strings are trimmed before parsing.
// nil, empty strings, booleans, NaN, and infinities are rejected.
func ParseYears(v any) (float64, error) {
	in := v
	switch x := v.(type) {
	case nil:
		return 0, &InvalidYearError{Value: v, Err: errNoValue}
	case bool:
		return 0, &InvalidYearError{Value: v, Err: errBoolean}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, &InvalidYearError{Value: v, Err: errNoValue}
		}
		in = s
	}

	f, err := cast.ToFloat64E(in)
	if err != nil {
		return 0, &InvalidYearError{Value: v, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InvalidYearError{Value: v, Err: errNotFinite}
	}
	return f, nil
}

// Convert coerces v and derives days, hours, minutes, and seconds by
// successive multiplication. Negative year counts are allowed; a count whose
// seconds overflow float64 is rejected as out of range.
func Convert(v any) (types.Conversion, error) {
	years, err := ParseYears(v)
	if err != nil {
		return types.Conversion{}, err
	}

	c := types.Conversion{
		Input:     v,
		InputType: TypeName(v),
		Years:     years,
	}
	c.Days = DaysPerYear * years
	c.Hours = HoursPerDay * c.Days
	c.Minutes = MinutesPerHour * c.Hours
	c.Seconds = SecondsPerMinute * c.Minutes
	if math.IsInf(c.Seconds, 0) {
		return types.Conversion{}, &InvalidYearError{Value: v, Err: errOverflow}
	}
	return c, nil
}

// YearConvert converts v, writes the text report to w, and returns seconds.
// For an invalid value it writes a diagnostic naming the value and its type
// and returns 0 with the *InvalidYearError; nothing is derived from it.
func YearConvert(w io.Writer, v any) (float64, error) {
	c, err := Convert(v)
	if err != nil {
		WriteDiagnostic(w, err)
		return 0, err
	}
	if err := Render(w, c, types.FormatText); err != nil {
		return c.Seconds, fmt.Errorf("writing report: %w", err)
	}
	return c.Seconds, nil
}

// WriteDiagnostic prints the one-line message for a failed conversion.
func WriteDiagnostic(w io.Writer, err error) {
	var ie *InvalidYearError
	if errors.As(err, &ie) {
		fmt.Fprintf(w, "Expecting a number for years, got %v, a %s.\n", ie.Value, TypeName(ie.Value))
		return
	}
	fmt.Fprintf(w, "conversion failed: %v\n", err)
}
