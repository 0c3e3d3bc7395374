package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/lox/skysay/internal/httputil"
	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/metrics"
	"github.com/lox/skysay/internal/models"
)

const DefaultOpenMeteoURL = "https://api.open-meteo.com"

const openMeteoTimeLayout = "2006-01-02T15:04"

var openMeteoVariables = strings.Join([]string{
	"temperature_2m",
	"relative_humidity_2m",
	"cloud_cover",
	"pressure_msl",
	"wind_speed_10m",
	"wind_direction_10m",
	"weather_code",
}, ",")

// OpenMeteo reads from the Open-Meteo forecast API, which needs no key.
type OpenMeteo struct {
	baseURL string
	client  *http.Client
	retry   httputil.RetryPolicy
	breaker *gobreaker.CircuitBreaker
	clock   clockwork.Clock
	logger  *slog.Logger
}

type OpenMeteoOption func(*OpenMeteo)

func WithHTTPClient(c *http.Client) OpenMeteoOption {
	return func(o *OpenMeteo) { o.client = c }
}

func WithRetry(p httputil.RetryPolicy) OpenMeteoOption {
	return func(o *OpenMeteo) { o.retry = p }
}

func WithClock(c clockwork.Clock) OpenMeteoOption {
	return func(o *OpenMeteo) { o.clock = c }
}

func WithLogger(l *slog.Logger) OpenMeteoOption {
	return func(o *OpenMeteo) { o.logger = l }
}

func NewOpenMeteo(baseURL string, opts ...OpenMeteoOption) *OpenMeteo {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}
	o := &OpenMeteo{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httputil.NewClient(httputil.DefaultTimeout),
		retry:   httputil.DefaultRetry,
		clock:   clockwork.NewRealClock(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			o.logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return o
}

func (o *OpenMeteo) Name() string { return "openmeteo" }

type openMeteoResponse struct {
	UTCOffsetSeconds int               `json:"utc_offset_seconds"`
	Current          *openMeteoCurrent `json:"current"`
	Hourly           *openMeteoHourly  `json:"hourly"`
}

type openMeteoCurrent struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	CloudCover    float64 `json:"cloud_cover"`
	Pressure      float64 `json:"pressure_msl"`
	WindSpeed     float64 `json:"wind_speed_10m"`
	WindDirection float64 `json:"wind_direction_10m"`
	WeatherCode   int     `json:"weather_code"`
}

type openMeteoHourly struct {
	Time          []string   `json:"time"`
	Temperature   []*float64 `json:"temperature_2m"`
	Humidity      []*float64 `json:"relative_humidity_2m"`
	CloudCover    []*float64 `json:"cloud_cover"`
	Pressure      []*float64 `json:"pressure_msl"`
	WindSpeed     []*float64 `json:"wind_speed_10m"`
	WindDirection []*float64 `json:"wind_direction_10m"`
	WeatherCode   []*int     `json:"weather_code"`
}

func (o *OpenMeteo) Current(ctx context.Context, at measure.Coordinates) (models.CurrentFull, error) {
	params := coordinateParams(at)
	params.Set("current", openMeteoVariables)

	resp, err := o.fetch(ctx, "current", params)
	if err != nil {
		return models.CurrentFull{}, err
	}
	if resp.Current == nil {
		return models.CurrentFull{}, fmt.Errorf("openmeteo current: response has no current block")
	}

	c := resp.Current
	kind, err := KindFromWMO(c.WeatherCode)
	if err != nil {
		return models.CurrentFull{}, fmt.Errorf("openmeteo current: %w", err)
	}
	cloud, err := measure.PercentageOf(c.CloudCover)
	if err != nil {
		return models.CurrentFull{}, fmt.Errorf("openmeteo current: cloud cover: %w", err)
	}
	hum, err := measure.PercentageOf(c.Humidity)
	if err != nil {
		return models.CurrentFull{}, fmt.Errorf("openmeteo current: humidity: %w", err)
	}
	return models.CurrentFull{
		Coordinates: at,
		Conditions: models.Conditions{
			Kind:          kind,
			Temperature:   measure.DegreesCelsius(c.Temperature),
			CloudCoverage: cloud,
			Humidity:      hum,
			Wind: models.Wind{
				Speed:     measure.MetersPerSecond(c.WindSpeed),
				Direction: measure.Azimuth(c.WindDirection),
			},
			Pressure: measure.Hectopascals(c.Pressure),
		},
	}, nil
}

func (o *OpenMeteo) Forecast(ctx context.Context, at measure.Coordinates, days int) ([]models.DayForecast, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, fmt.Errorf("openmeteo forecast: days %d out of range 1..%d", days, MaxForecastDays)
	}
	params := coordinateParams(at)
	params.Set("hourly", openMeteoVariables)
	params.Set("forecast_days", strconv.Itoa(days))

	all, today, err := o.fetchDays(ctx, "forecast", params)
	if err != nil {
		return nil, err
	}
	_, upcoming := splitAt(all, today)
	if len(upcoming) > days {
		upcoming = upcoming[:days]
	}
	if len(upcoming) == 0 {
		return nil, fmt.Errorf("openmeteo forecast: no days from %s", today.Format(time.DateOnly))
	}
	return upcoming, nil
}

func (o *OpenMeteo) History(ctx context.Context, at measure.Coordinates, days int) ([]models.DayForecast, error) {
	if days < MinHistoryDays || days > MaxHistoryDays {
		return nil, fmt.Errorf("openmeteo history: days %d out of range %d..%d", days, MinHistoryDays, MaxHistoryDays)
	}
	params := coordinateParams(at)
	params.Set("hourly", openMeteoVariables)
	params.Set("past_days", strconv.Itoa(days))
	params.Set("forecast_days", "1")

	all, today, err := o.fetchDays(ctx, "history", params)
	if err != nil {
		return nil, err
	}
	past, _ := splitAt(all, today)
	if len(past) > days {
		past = past[len(past)-days:]
	}
	if len(past) == 0 {
		return nil, fmt.Errorf("openmeteo history: no days before %s", today.Format(time.DateOnly))
	}
	return past, nil
}

// fetchDays requests hourly data and aggregates it by local date. It also
// returns the local today derived from the clock and the response offset.
func (o *OpenMeteo) fetchDays(ctx context.Context, endpoint string, params url.Values) ([]models.DayForecast, time.Time, error) {
	resp, err := o.fetch(ctx, endpoint, params)
	if err != nil {
		return nil, time.Time{}, err
	}
	if resp.Hourly == nil {
		return nil, time.Time{}, fmt.Errorf("openmeteo %s: response has no hourly block", endpoint)
	}

	loc := time.FixedZone("", resp.UTCOffsetSeconds)
	samples, skipped, err := hourlySamples(resp.Hourly, loc)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("openmeteo %s: %w", endpoint, err)
	}
	if skipped > 0 {
		o.logger.Debug("skipped incomplete hours", "endpoint", endpoint, "skipped", skipped)
	}

	days, err := aggregateDays(samples)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("openmeteo %s: %w", endpoint, err)
	}
	return days, dateOf(o.clock.Now().In(loc)), nil
}

// hourlySamples zips the hourly columns, dropping hours with any null value.
func hourlySamples(h *openMeteoHourly, loc *time.Location) ([]hourlySample, int, error) {
	n := len(h.Time)
	for _, l := range []int{len(h.Temperature), len(h.Humidity), len(h.CloudCover), len(h.Pressure), len(h.WindSpeed), len(h.WindDirection), len(h.WeatherCode)} {
		if l != n {
			return nil, 0, fmt.Errorf("hourly columns have mismatched lengths")
		}
	}

	samples := make([]hourlySample, 0, n)
	skipped := 0
	for i := range n {
		if h.Temperature[i] == nil || h.Humidity[i] == nil || h.CloudCover[i] == nil || h.Pressure[i] == nil ||
			h.WindSpeed[i] == nil || h.WindDirection[i] == nil || h.WeatherCode[i] == nil {
			skipped++
			continue
		}
		at, err := time.ParseInLocation(openMeteoTimeLayout, h.Time[i], loc)
		if err != nil {
			return nil, 0, fmt.Errorf("parse hour %q: %w", h.Time[i], err)
		}
		samples = append(samples, hourlySample{
			at:            at,
			temperature:   *h.Temperature[i],
			humidity:      *h.Humidity[i],
			cloudCover:    *h.CloudCover[i],
			pressure:      *h.Pressure[i],
			windSpeed:     *h.WindSpeed[i],
			windDirection: *h.WindDirection[i],
			code:          *h.WeatherCode[i],
		})
	}
	if len(samples) == 0 {
		return nil, skipped, fmt.Errorf("no complete hourly samples")
	}
	return samples, skipped, nil
}

func coordinateParams(at measure.Coordinates) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	params.Set("wind_speed_unit", "ms")
	params.Set("timezone", "auto")
	return params
}

func (o *OpenMeteo) fetch(ctx context.Context, endpoint string, params url.Values) (*openMeteoResponse, error) {
	u := o.baseURL + "/v1/forecast?" + params.Encode()
	start := time.Now()

	var resp openMeteoResponse
	_, err := o.breaker.Execute(func() (interface{}, error) {
		return nil, httputil.GetJSON(ctx, o.client, u, o.retry, &resp)
	})

	metrics.ProviderLatency.WithLabelValues(o.Name(), endpoint).Observe(time.Since(start).Seconds())
	status := "ok"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		status = "circuit_open"
	case err != nil:
		status = "error"
	}
	metrics.ProviderCallsTotal.WithLabelValues(o.Name(), endpoint, status).Inc()

	if err != nil {
		return nil, fmt.Errorf("openmeteo %s: %w", endpoint, err)
	}
	o.logger.Debug("fetched", "provider", o.Name(), "endpoint", endpoint, "duration", time.Since(start))
	return &resp, nil
}
