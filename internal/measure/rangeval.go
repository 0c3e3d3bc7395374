package measure

import (
	"errors"
	"fmt"
)

// ErrInvertedRange is wrapped by every RangeError.
var ErrInvertedRange = errors.New("range minimum exceeds maximum")

// RangeError reports an attempt to build a range whose min is above its max.
type RangeError struct {
	Min string
	Max string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: min %s exceeds max %s", e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrInvertedRange }

// Quantity is implemented by every scalar that can form a Range.
type Quantity[T any] interface {
	Format(precision int) string
	Compare(other T) int
}

// Range is an inclusive min..max pair of one quantity. The zero value is a
// degenerate range at the quantity's zero value.
type Range[T Quantity[T]] struct {
	min T
	max T
}

type (
	TemperatureRange = Range[Temperature]
	SpeedRange       = Range[Speed]
	PressureRange    = Range[Pressure]
	PercentageRange  = Range[Percentage]
)

// NewRange builds a range, failing with *RangeError when min > max.
func NewRange[T Quantity[T]](min, max T) (Range[T], error) {
	if min.Compare(max) > 0 {
		return Range[T]{}, &RangeError{
			Min: min.Format(DefaultPrecision),
			Max: max.Format(DefaultPrecision),
		}
	}
	return Range[T]{min: min, max: max}, nil
}

// MustRange is like NewRange but panics on an inverted range.
func MustRange[T Quantity[T]](min, max T) Range[T] {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range[T]) Min() T { return r.min }

func (r Range[T]) Max() T { return r.max }

// Format prints "min - max".
func (r Range[T]) Format(precision int) string {
	return r.min.Format(precision) + " - " + r.max.Format(precision)
}

func (r Range[T]) String() string { return r.Format(DefaultPrecision) }
