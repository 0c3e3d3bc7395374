package provider

import (
	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

const (
	FlagTempOutOfRange     = "temp_out_of_range"
	FlagHumidityInvalid    = "humidity_invalid"
	FlagCloudCoverInvalid  = "cloud_cover_invalid"
	FlagWindSpeedNegative  = "wind_speed_negative"
	FlagWindSpeedUnlikely  = "wind_speed_unlikely"
	FlagPressureOutOfRange = "pressure_out_of_range"
)

const (
	minPlausibleTemp     = -90.0
	maxPlausibleTemp     = 60.0
	maxPlausibleWind     = 120.0
	minPlausiblePressure = 850.0
	maxPlausiblePressure = 1100.0
)

func invalidPercentage(p measure.Percentage) bool {
	return p < 0 || p > 100
}

func implausibleTemp(c float64) bool {
	return c < minPlausibleTemp || c > maxPlausibleTemp
}

func implausiblePressure(hpa float64) bool {
	return hpa < minPlausiblePressure || hpa > maxPlausiblePressure
}

// ValidateCurrent returns quality flags for implausible values. Flagged
// conditions are still usable; the flags are for logging.
func ValidateCurrent(c models.Conditions) []string {
	var flags []string

	if implausibleTemp(c.Temperature.Celsius()) {
		flags = append(flags, FlagTempOutOfRange)
	}
	if invalidPercentage(c.Humidity) {
		flags = append(flags, FlagHumidityInvalid)
	}
	if invalidPercentage(c.CloudCoverage) {
		flags = append(flags, FlagCloudCoverInvalid)
	}

	wind := c.Wind.Speed.MetersPerSecond()
	if wind < 0 {
		flags = append(flags, FlagWindSpeedNegative)
	} else if wind > maxPlausibleWind {
		flags = append(flags, FlagWindSpeedUnlikely)
	}

	if implausiblePressure(c.Pressure.Hectopascals()) {
		flags = append(flags, FlagPressureOutOfRange)
	}

	return flags
}

// ValidateDay is ValidateCurrent for both ends of every range of a day.
func ValidateDay(d models.DayForecast) []string {
	var flags []string

	if implausibleTemp(d.Temperature.Min().Celsius()) || implausibleTemp(d.Temperature.Max().Celsius()) {
		flags = append(flags, FlagTempOutOfRange)
	}
	if invalidPercentage(d.Humidity.Min()) || invalidPercentage(d.Humidity.Max()) {
		flags = append(flags, FlagHumidityInvalid)
	}
	if invalidPercentage(d.CloudCoverage.Min()) || invalidPercentage(d.CloudCoverage.Max()) {
		flags = append(flags, FlagCloudCoverInvalid)
	}

	if d.Wind.Speed.Min().MetersPerSecond() < 0 {
		flags = append(flags, FlagWindSpeedNegative)
	}
	if d.Wind.Speed.Max().MetersPerSecond() > maxPlausibleWind {
		flags = append(flags, FlagWindSpeedUnlikely)
	}

	if implausiblePressure(d.Pressure.Min().Hectopascals()) || implausiblePressure(d.Pressure.Max().Hectopascals()) {
		flags = append(flags, FlagPressureOutOfRange)
	}

	return flags
}
