// Package listing prints partial reports as "Label: value" lines. Only the
// attributes present in a report are printed, always in the same order.
package listing

import (
	"strings"

	"github.com/lox/skysay/internal/classify"
	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

const dateLayout = "02.01.2006"

const (
	labelCoordinates = "Coordinates"
	labelDate        = "Date"
	labelWeather     = "Weather"
	labelTemperature = "Temperature"
	labelClouds      = "Cloud coverage"
	labelHumidity    = "Humidity"
	labelWind        = "Wind"
	labelPressure    = "Pressure"
)

type lines []string

func (l *lines) add(label, value string) {
	*l = append(*l, label+": "+value)
}

func (l lines) String() string {
	return strings.Join(l, "\n")
}

// Current lists the selected attributes of the current conditions.
func Current(r models.CurrentPartial) string {
	var out lines
	out.add(labelCoordinates, r.Coordinates.String())
	appendConditions(&out, r.Conditions)
	return out.String()
}

// Today lists the selected attributes of today's forecast.
func Today(r models.TodayPartial) string {
	var out lines
	out.add(labelCoordinates, r.Coordinates.String())
	appendDay(&out, r.Day)
	return out.String()
}

// MultiDay lists each day under its own date header, days separated by a
// blank line.
func MultiDay(r models.MultiDayPartial) string {
	var header lines
	header.add(labelCoordinates, r.Coordinates.String())

	blocks := []string{header.String()}
	for _, d := range r.Days {
		var day lines
		day.add(labelDate, d.Date.Format(dateLayout))
		appendDay(&day, d)
		blocks = append(blocks, day.String())
	}
	return strings.Join(blocks, "\n\n")
}

func appendConditions(out *lines, c models.PartialConditions) {
	if k, ok := c.Kind.Get(); ok {
		out.add(labelWeather, describeKind(k))
	}
	if t, ok := c.Temperature.Get(); ok {
		out.add(labelTemperature, t.String())
	}
	if p, ok := c.CloudCoverage.Get(); ok {
		out.add(labelClouds, p.String())
	}
	if p, ok := c.Humidity.Get(); ok {
		out.add(labelHumidity, p.String())
	}
	if w, ok := c.Wind.Get(); ok {
		out.add(labelWind, DescribeWind(w))
	}
	if p, ok := c.Pressure.Get(); ok {
		out.add(labelPressure, p.String())
	}
}

func appendDay(out *lines, d models.PartialDay) {
	if k, ok := d.Kind.Get(); ok {
		out.add(labelWeather, describeKind(k))
	}
	if t, ok := d.Temperature.Get(); ok {
		out.add(labelTemperature, t.String())
	}
	if p, ok := d.CloudCoverage.Get(); ok {
		out.add(labelClouds, p.String())
	}
	if p, ok := d.Humidity.Get(); ok {
		out.add(labelHumidity, p.String())
	}
	if w, ok := d.Wind.Get(); ok {
		out.add(labelWind, DescribeWindScope(w))
	}
	if p, ok := d.Pressure.Get(); ok {
		out.add(labelPressure, p.String())
	}
}

func describeKind(k models.Kind) string {
	phrase := classify.KindPhrase(k)
	return strings.ToUpper(phrase[:1]) + phrase[1:]
}

// DescribeWind prints an instant wind as "42.5 m/s, 200.2° (S)".
func DescribeWind(w models.Wind) string {
	return w.Speed.String() + ", " + describeDirection(w.Direction)
}

// DescribeWindScope prints a period wind as "1.0 m/s - 3.1 m/s, 200.2° (S)".
func DescribeWindScope(w models.WindScope) string {
	return w.Speed.String() + ", " + describeDirection(w.Direction)
}

func describeDirection(a measure.Azimuth) string {
	return a.String() + " (" + a.Cardinal().Symbol() + ")"
}
