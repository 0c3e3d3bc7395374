package models

import (
	"time"

	"github.com/lox/skysay/internal/maybe"
	"github.com/lox/skysay/internal/measure"
)

// Wind is the wind at an instant.
type Wind struct {
	Speed     measure.Speed
	Direction measure.Azimuth
}

// WindScope is the wind over a period: a speed range and its dominant direction.
type WindScope struct {
	Speed     measure.SpeedRange
	Direction measure.Azimuth
}

// Conditions is the weather at an instant with every attribute present.
type Conditions struct {
	Kind          Kind
	Temperature   measure.Temperature
	CloudCoverage measure.Percentage
	Humidity      measure.Percentage
	Wind          Wind
	Pressure      measure.Pressure
}

// PartialConditions is Conditions restricted to a caller-selected attribute set.
type PartialConditions struct {
	Kind          maybe.Maybe[Kind]
	Temperature   maybe.Maybe[measure.Temperature]
	CloudCoverage maybe.Maybe[measure.Percentage]
	Humidity      maybe.Maybe[measure.Percentage]
	Wind          maybe.Maybe[Wind]
	Pressure      maybe.Maybe[measure.Pressure]
}

// Select keeps only the attributes in set.
func (c Conditions) Select(set AttributeSet) PartialConditions {
	return PartialConditions{
		Kind:          maybe.When(set.Has(AttrWeatherKind), c.Kind),
		Temperature:   maybe.When(set.Has(AttrTemperature), c.Temperature),
		CloudCoverage: maybe.When(set.Has(AttrCloudCoverage), c.CloudCoverage),
		Humidity:      maybe.When(set.Has(AttrHumidity), c.Humidity),
		Wind:          maybe.When(set.Has(AttrWind), c.Wind),
		Pressure:      maybe.When(set.Has(AttrPressure), c.Pressure),
	}
}

// DayForecast aggregates one calendar day, forecast or observed.
type DayForecast struct {
	Date          time.Time
	Kind          Kind
	Temperature   measure.TemperatureRange
	CloudCoverage measure.PercentageRange
	Humidity      measure.PercentageRange
	Wind          WindScope
	Pressure      measure.PressureRange
}

// PartialDay is DayForecast restricted to a caller-selected attribute set.
// Date is always present.
type PartialDay struct {
	Date          time.Time
	Kind          maybe.Maybe[Kind]
	Temperature   maybe.Maybe[measure.TemperatureRange]
	CloudCoverage maybe.Maybe[measure.PercentageRange]
	Humidity      maybe.Maybe[measure.PercentageRange]
	Wind          maybe.Maybe[WindScope]
	Pressure      maybe.Maybe[measure.PressureRange]
}

func (d DayForecast) Select(set AttributeSet) PartialDay {
	return PartialDay{
		Date:          d.Date,
		Kind:          maybe.When(set.Has(AttrWeatherKind), d.Kind),
		Temperature:   maybe.When(set.Has(AttrTemperature), d.Temperature),
		CloudCoverage: maybe.When(set.Has(AttrCloudCoverage), d.CloudCoverage),
		Humidity:      maybe.When(set.Has(AttrHumidity), d.Humidity),
		Wind:          maybe.When(set.Has(AttrWind), d.Wind),
		Pressure:      maybe.When(set.Has(AttrPressure), d.Pressure),
	}
}

// Report is one of the report variants below.
type Report interface {
	isReport()
}

type CurrentFull struct {
	Coordinates measure.Coordinates
	Conditions  Conditions
}

type CurrentPartial struct {
	Coordinates measure.Coordinates
	Conditions  PartialConditions
}

type TodayFull struct {
	Coordinates measure.Coordinates
	Day         DayForecast
}

type TodayPartial struct {
	Coordinates measure.Coordinates
	Day         PartialDay
}

// MultiDayFull holds consecutive days starting today.
type MultiDayFull struct {
	Coordinates measure.Coordinates
	Days        []DayForecast
}

type MultiDayPartial struct {
	Coordinates measure.Coordinates
	Days        []PartialDay
}

// PastFull holds consecutive past days ending yesterday, oldest first.
type PastFull struct {
	Coordinates measure.Coordinates
	Days        []DayForecast
}

func (CurrentFull) isReport()     {}
func (CurrentPartial) isReport()  {}
func (TodayFull) isReport()       {}
func (TodayPartial) isReport()    {}
func (MultiDayFull) isReport()    {}
func (MultiDayPartial) isReport() {}
func (PastFull) isReport()        {}

func (r CurrentFull) Select(set AttributeSet) CurrentPartial {
	return CurrentPartial{Coordinates: r.Coordinates, Conditions: r.Conditions.Select(set)}
}

func (r TodayFull) Select(set AttributeSet) TodayPartial {
	return TodayPartial{Coordinates: r.Coordinates, Day: r.Day.Select(set)}
}

func (r MultiDayFull) Select(set AttributeSet) MultiDayPartial {
	days := make([]PartialDay, len(r.Days))
	for i, d := range r.Days {
		days[i] = d.Select(set)
	}
	return MultiDayPartial{Coordinates: r.Coordinates, Days: days}
}
