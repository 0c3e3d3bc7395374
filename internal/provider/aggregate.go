package provider

import (
	"fmt"
	"time"

	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

// hourlySample is one complete hour of upstream data in local time.
type hourlySample struct {
	at            time.Time
	temperature   float64
	humidity      float64
	cloudCover    float64
	pressure      float64
	windSpeed     float64
	windDirection float64
	code          int
}

// dateOf truncates t to local midnight.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// aggregateDays folds time-ordered hourly samples into one DayForecast per
// local date.
func aggregateDays(samples []hourlySample) ([]models.DayForecast, error) {
	var days []models.DayForecast
	for start := 0; start < len(samples); {
		date := dateOf(samples[start].at)
		end := start + 1
		for end < len(samples) && dateOf(samples[end].at).Equal(date) {
			end++
		}
		day, err := aggregateDay(date, samples[start:end])
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", date.Format(time.DateOnly), err)
		}
		days = append(days, day)
		start = end
	}
	return days, nil
}

// aggregateDay spans min..max for every scalar, takes the wind direction of
// the windiest hour, and the kind of the most severe weather code seen.
func aggregateDay(date time.Time, hours []hourlySample) (models.DayForecast, error) {
	first := hours[0]
	minTemp, maxTemp := first.temperature, first.temperature
	minCloud, maxCloud := first.cloudCover, first.cloudCover
	minHum, maxHum := first.humidity, first.humidity
	minWind, peak := first.windSpeed, first
	minPres, maxPres := first.pressure, first.pressure
	worst := first.code

	for _, h := range hours {
		if _, err := KindFromWMO(h.code); err != nil {
			return models.DayForecast{}, err
		}
		minTemp, maxTemp = min(minTemp, h.temperature), max(maxTemp, h.temperature)
		minCloud, maxCloud = min(minCloud, h.cloudCover), max(maxCloud, h.cloudCover)
		minHum, maxHum = min(minHum, h.humidity), max(maxHum, h.humidity)
		minPres, maxPres = min(minPres, h.pressure), max(maxPres, h.pressure)
		minWind = min(minWind, h.windSpeed)
		if h.windSpeed > peak.windSpeed {
			peak = h
		}
		if moreSevere(h.code, worst) {
			worst = h.code
		}
	}

	kind, err := KindFromWMO(worst)
	if err != nil {
		return models.DayForecast{}, err
	}

	temp, err := measure.NewRange(measure.DegreesCelsius(minTemp), measure.DegreesCelsius(maxTemp))
	if err != nil {
		return models.DayForecast{}, fmt.Errorf("temperature: %w", err)
	}
	cloud, err := percentageRange(minCloud, maxCloud)
	if err != nil {
		return models.DayForecast{}, fmt.Errorf("cloud cover: %w", err)
	}
	hum, err := percentageRange(minHum, maxHum)
	if err != nil {
		return models.DayForecast{}, fmt.Errorf("humidity: %w", err)
	}
	wind, err := measure.NewRange(measure.MetersPerSecond(minWind), measure.MetersPerSecond(peak.windSpeed))
	if err != nil {
		return models.DayForecast{}, fmt.Errorf("wind speed: %w", err)
	}
	pres, err := measure.NewRange(measure.Hectopascals(minPres), measure.Hectopascals(maxPres))
	if err != nil {
		return models.DayForecast{}, fmt.Errorf("pressure: %w", err)
	}

	return models.DayForecast{
		Date:          date,
		Kind:          kind,
		Temperature:   temp,
		CloudCoverage: cloud,
		Humidity:      hum,
		Wind:          models.WindScope{Speed: wind, Direction: measure.Azimuth(peak.windDirection)},
		Pressure:      pres,
	}, nil
}

func percentageRange(lo, hi float64) (measure.PercentageRange, error) {
	minP, err := measure.PercentageOf(lo)
	if err != nil {
		return measure.PercentageRange{}, err
	}
	maxP, err := measure.PercentageOf(hi)
	if err != nil {
		return measure.PercentageRange{}, err
	}
	return measure.NewRange(minP, maxP)
}

// splitAt returns the days before today and the days from today on.
func splitAt(days []models.DayForecast, today time.Time) (past, upcoming []models.DayForecast) {
	for i, d := range days {
		if !d.Date.Before(today) {
			return days[:i], days[i:]
		}
	}
	return days, nil
}
