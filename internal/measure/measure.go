// Package measure defines the physically typed quantities a weather report is
// made of. Each scalar carries its unit and knows how to print itself; ranges
// pair two scalars of the same kind and refuse to be built upside down.
package measure

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimals used by String.
const DefaultPrecision = 1

func formatFloat(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Temperature is an air temperature reading.
type Temperature struct {
	value float64
	unit  TemperatureUnit
}

// DegreesCelsius returns a temperature in °C.
func DegreesCelsius(v float64) Temperature {
	return Temperature{value: v, unit: Celsius}
}

// Celsius returns the temperature converted to °C.
func (t Temperature) Celsius() float64 {
	return t.unit.toCelsius(t.value)
}

func (t Temperature) Unit() TemperatureUnit { return t.unit }

// Format prints the value with the given number of decimals, e.g. "22.4°C".
func (t Temperature) Format(precision int) string {
	return formatFloat(t.value, precision) + t.unit.spec().suffix()
}

func (t Temperature) String() string { return t.Format(DefaultPrecision) }

// Compare orders temperatures by their Celsius value.
func (t Temperature) Compare(o Temperature) int {
	return cmp.Compare(t.Celsius(), o.Celsius())
}

// Speed is a wind speed.
type Speed struct {
	value float64
	unit  SpeedUnit
}

// MetersPerSecond returns a speed in m/s.
func MetersPerSecond(v float64) Speed {
	return Speed{value: v, unit: MPS}
}

// MetersPerSecond returns the speed converted to m/s.
func (s Speed) MetersPerSecond() float64 {
	return s.unit.toMPS(s.value)
}

func (s Speed) Unit() SpeedUnit { return s.unit }

func (s Speed) Format(precision int) string {
	return formatFloat(s.value, precision) + s.unit.spec().suffix()
}

func (s Speed) String() string { return s.Format(DefaultPrecision) }

func (s Speed) Compare(o Speed) int {
	return cmp.Compare(s.MetersPerSecond(), o.MetersPerSecond())
}

// Pressure is atmospheric pressure reduced to mean sea level.
type Pressure struct {
	value float64
	unit  PressureUnit
}

// Hectopascals returns a pressure in hPa.
func Hectopascals(v float64) Pressure {
	return Pressure{value: v, unit: HPa}
}

// Hectopascals returns the pressure converted to hPa.
func (p Pressure) Hectopascals() float64 {
	return p.unit.toHPa(p.value)
}

func (p Pressure) Unit() PressureUnit { return p.unit }

func (p Pressure) Format(precision int) string {
	return formatFloat(p.value, precision) + p.unit.spec().suffix()
}

func (p Pressure) String() string { return p.Format(DefaultPrecision) }

func (p Pressure) Compare(o Pressure) int {
	return cmp.Compare(p.Hectopascals(), o.Hectopascals())
}

// Percentage is a whole-number share such as humidity or cloud coverage.
// It is not clamped to 0..100.
type Percentage int8

// ErrPercentageOverflow is returned when a reading does not fit a Percentage.
var ErrPercentageOverflow = errors.New("percentage out of representable range")

// PercentageOf rounds v to the nearest whole percent. Readings a little
// outside 0..100 are kept for validation to flag; NaN and anything that
// would not fit are rejected.
func PercentageOf(v float64) (Percentage, error) {
	r := math.Round(v)
	if math.IsNaN(r) || r < math.MinInt8 || r > math.MaxInt8 {
		return 0, fmt.Errorf("%w: %v", ErrPercentageOverflow, v)
	}
	return Percentage(r), nil
}

// Format ignores precision: percentages always print as integers.
func (p Percentage) Format(int) string {
	return strconv.Itoa(int(p)) + "%"
}

func (p Percentage) String() string { return p.Format(0) }

func (p Percentage) Compare(o Percentage) int {
	return cmp.Compare(p, o)
}
