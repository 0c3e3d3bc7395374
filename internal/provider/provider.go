// Package provider fetches weather from an upstream source and shapes it into
// report data. Two sources exist: Open-Meteo over HTTP and a seeded fake for
// offline use.
package provider

import (
	"context"

	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

// Provider is a source of current, forecast and historical weather.
type Provider interface {
	Name() string
	Current(ctx context.Context, at measure.Coordinates) (models.CurrentFull, error)
	// Forecast returns days consecutive days starting with the local today.
	Forecast(ctx context.Context, at measure.Coordinates, days int) ([]models.DayForecast, error)
	// History returns days consecutive days ending with yesterday, oldest first.
	History(ctx context.Context, at measure.Coordinates, days int) ([]models.DayForecast, error)
}

const (
	MinForecastDays = 2
	MaxForecastDays = 16
	MinHistoryDays  = 1
	MaxHistoryDays  = 92
)
