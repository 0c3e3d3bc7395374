// Package narrative turns full reports into English prose. Each day becomes a
// three-sentence block: temperature, sky and clouds; humidity and wind;
// pressure. Current conditions are told in the present tense, forecasts in
// the future and history in the past.
package narrative

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/skysay/internal/classify"
	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

// DateLayout is how days other than today, tomorrow and yesterday are named.
const DateLayout = "02.01.2006"

// Tense selects the verb forms used by every clause.
type Tense uint8

const (
	PresentTense Tense = iota
	FutureTense
	PastTense
)

type verbForms struct {
	be    string
	stand string
}

var tenseVerbs = [...]verbForms{
	PresentTense: {be: "is", stand: "stands"},
	FutureTense:  {be: "will be", stand: "will stand"},
	PastTense:    {be: "was", stand: "stood"},
}

func (t Tense) verbs() verbForms { return tenseVerbs[t] }

// Current describes the weather right now.
func Current(r models.CurrentFull) string {
	c := r.Conditions
	return block(
		describeTemperature(c.Temperature)+" and "+describeKind(c.Kind, PresentTense)+" with "+describeClouds(c.CloudCoverage),
		describeHumidity(c.Humidity)+" with "+describeWind(c.Wind),
		DescribePressure(c.Pressure),
	)
}

// Today describes today's forecast.
func Today(r models.TodayFull) string {
	return dayBlock(r.Day, "Today", FutureTense)
}

// MultiDay describes consecutive forecast days, one block per day separated
// by a blank line. The first two days are called today and tomorrow no
// matter what their dates are.
func MultiDay(r models.MultiDayFull) string {
	blocks := make([]string, len(r.Days))
	for i, d := range r.Days {
		blocks[i] = dayBlock(d, forecastDayName(i, d.Date), FutureTense)
	}
	return strings.Join(blocks, "\n")
}

// Past describes consecutive past days, oldest first. The last day is
// yesterday and is set apart from the earlier days by a blank line.
func Past(r models.PastFull) string {
	var sb strings.Builder
	last := len(r.Days) - 1
	for i, d := range r.Days {
		name := "On " + d.Date.Format(DateLayout)
		if i == last {
			name = "Yesterday"
			if i > 0 {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(dayBlock(d, name, PastTense))
	}
	return sb.String()
}

func forecastDayName(i int, date time.Time) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return "On " + date.Format(DateLayout)
	}
}

func dayBlock(d models.DayForecast, when string, tense Tense) string {
	return block(
		describeTemperatureRange(d.Temperature, when, tense)+" and "+describeKind(d.Kind, tense)+" with "+describeCloudRange(d.CloudCoverage),
		describeHumidityRange(d.Humidity, tense)+" with "+describeWindScope(d.Wind),
		describePressureRange(d.Pressure, tense),
	)
}

func block(sentences ...string) string {
	var sb strings.Builder
	for _, s := range sentences {
		sb.WriteString(capitalize(s))
		sb.WriteString(".\n")
	}
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func describeTemperature(t measure.Temperature) string {
	return fmt.Sprintf("it is %s at %s", classify.Temperature(t), t)
}

func describeTemperatureRange(r measure.TemperatureRange, when string, tense Tense) string {
	return fmt.Sprintf("%s it %s %s with temperatures from %s to %s",
		when, tense.verbs().be, classify.TemperatureRange(r), r.Min(), r.Max())
}

func describeKind(k models.Kind, tense Tense) string {
	be := tense.verbs().be
	switch k := k.(type) {
	case models.Clouds:
		return "the sky " + be + " " + classify.SkyAdjective(k)
	case models.Thunderstorm:
		return "there " + be + " a " + classify.KindPhrase(k)
	default:
		return "there " + be + " " + classify.KindPhrase(k)
	}
}

func describeClouds(p measure.Percentage) string {
	if p == 0 {
		return "no clouds"
	}
	return p.String() + " cloud coverage"
}

func describeCloudRange(r measure.PercentageRange) string {
	if r.Max() == 0 {
		return "no clouds"
	}
	return fmt.Sprintf("%s to %s cloud coverage", r.Min(), r.Max())
}

func humiditySubject(level classify.HumidityLevel, be string) string {
	if level.IsNoun() {
		return fmt.Sprintf("there %s %s", be, level)
	}
	return fmt.Sprintf("the air %s %s", be, level)
}

func describeHumidity(p measure.Percentage) string {
	return humiditySubject(classify.Humidity(p), PresentTense.verbs().be) + " at " + p.String()
}

func describeHumidityRange(r measure.PercentageRange, tense Tense) string {
	return fmt.Sprintf("%s from %s to %s",
		humiditySubject(classify.HumidityRange(r), tense.verbs().be), r.Min(), r.Max())
}

func describeWind(w models.Wind) string {
	level := classify.WindSpeed(w.Speed)
	if level == classify.NoWind {
		return level.String()
	}
	return fmt.Sprintf("%s from the %s blowing at %s", level, w.Direction.Cardinal(), w.Speed)
}

func describeWindScope(w models.WindScope) string {
	level := classify.WindSpeedRange(w.Speed)
	if level == classify.NoWind {
		return level.String()
	}
	return fmt.Sprintf("mostly %s from the %s blowing at %s to maximum %s",
		level, w.Direction.Cardinal(), w.Speed.Min(), w.Speed.Max())
}

// DescribePressure phrases an instantaneous pressure reading, e.g.
// "Low pressure stands at 1009.3 hPa".
func DescribePressure(p measure.Pressure) string {
	return capitalize(fmt.Sprintf("%s %s at %s", classify.Pressure(p), PresentTense.verbs().stand, p))
}

func describePressureRange(r measure.PressureRange, tense Tense) string {
	return fmt.Sprintf("mostly %s %s at lowest %s up to %s",
		classify.PressureRange(r), tense.verbs().stand, r.Min(), r.Max())
}
