package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/metrics"
	"github.com/lox/skysay/internal/models"
)

// Scope is the time span a report covers.
type Scope string

const (
	ScopeCurrent  Scope = "current"
	ScopeToday    Scope = "today"
	ScopeForecast Scope = "forecast"
	ScopePast     Scope = "past"
)

// Request describes one report to fetch. Days is ignored for the current and
// today scopes.
type Request struct {
	Scope Scope
	At    measure.Coordinates
	Days  int
}

// FetchReport fetches the data for req from p and assembles the full report.
// Implausible values are logged and counted but do not fail the fetch.
func FetchReport(ctx context.Context, p Provider, req Request, logger *slog.Logger) (models.Report, error) {
	switch req.Scope {
	case ScopeCurrent:
		r, err := p.Current(ctx, req.At)
		if err != nil {
			return nil, err
		}
		recordFlags(logger, p.Name(), "current", ValidateCurrent(r.Conditions))
		return r, nil

	case ScopeToday:
		days, err := p.Forecast(ctx, req.At, 1)
		if err != nil {
			return nil, err
		}
		checkDays(logger, p.Name(), days)
		return models.TodayFull{Coordinates: req.At, Day: days[0]}, nil

	case ScopeForecast:
		if req.Days < MinForecastDays || req.Days > MaxForecastDays {
			return nil, fmt.Errorf("forecast days %d out of range %d..%d", req.Days, MinForecastDays, MaxForecastDays)
		}
		days, err := p.Forecast(ctx, req.At, req.Days)
		if err != nil {
			return nil, err
		}
		checkDays(logger, p.Name(), days)
		logger.Info("fetched forecast", "provider", p.Name(), "days", len(days))
		return models.MultiDayFull{Coordinates: req.At, Days: days}, nil

	case ScopePast:
		days, err := p.History(ctx, req.At, req.Days)
		if err != nil {
			return nil, err
		}
		checkDays(logger, p.Name(), days)
		logger.Info("fetched history", "provider", p.Name(), "days", len(days))
		return models.PastFull{Coordinates: req.At, Days: days}, nil

	default:
		return nil, fmt.Errorf("unknown scope %q", req.Scope)
	}
}

func checkDays(logger *slog.Logger, provider string, days []models.DayForecast) {
	for _, d := range days {
		recordFlags(logger, provider, d.Date.Format("2006-01-02"), ValidateDay(d))
	}
}

func recordFlags(logger *slog.Logger, provider, subject string, flags []string) {
	if len(flags) == 0 {
		return
	}
	for _, f := range flags {
		metrics.QualityFlagsTotal.WithLabelValues(f).Inc()
	}
	logger.Warn("implausible weather data", "provider", provider, "subject", subject, "flags", strings.Join(flags, ","))
}
