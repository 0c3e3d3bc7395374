package provider

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

var fakeKinds = []models.Kind{
	models.CloudsClear,
	models.CloudsLight,
	models.CloudsModerate,
	models.CloudsDense,
	models.FogNormal,
	models.FogRime,
	models.Precipitation{Type: models.Rain, Intensity: models.IntensityLight},
	models.Precipitation{Type: models.Rain, Intensity: models.IntensityModerate},
	models.Precipitation{Type: models.Rain, Intensity: models.IntensityHeavy},
	models.Precipitation{Type: models.Rain, Intensity: models.IntensityShower},
	models.Precipitation{Type: models.Rain, Intensity: models.IntensityLight, Heat: models.HeatFreezing},
	models.Precipitation{Type: models.Snow, Intensity: models.IntensityLight},
	models.Precipitation{Type: models.Snow, Intensity: models.IntensityHeavy},
	models.Precipitation{Type: models.Snow, Intensity: models.IntensityShower},
	models.Thunderstorm{},
}

// Fake generates plausible weather from a seed. Equal seeds and clocks give
// equal reports.
type Fake struct {
	clock clockwork.Clock

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFake(seed uint64, clock clockwork.Clock) *Fake {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Fake{
		clock: clock,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Current(ctx context.Context, at measure.Coordinates) (models.CurrentFull, error) {
	if err := ctx.Err(); err != nil {
		return models.CurrentFull{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	return models.CurrentFull{
		Coordinates: at,
		Conditions: models.Conditions{
			Kind:          f.kind(),
			Temperature:   measure.DegreesCelsius(f.between(-15, 38)),
			CloudCoverage: roundPercent(f.between(0, 100)),
			Humidity:      roundPercent(f.between(10, 100)),
			Wind: models.Wind{
				Speed:     measure.MetersPerSecond(f.between(0, 20)),
				Direction: measure.Azimuth(f.between(0, 359.9)),
			},
			Pressure: measure.Hectopascals(f.between(975, 1045)),
		},
	}, nil
}

func (f *Fake) Forecast(ctx context.Context, _ measure.Coordinates, days int) ([]models.DayForecast, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, fmt.Errorf("fake forecast: days %d out of range 1..%d", days, MaxForecastDays)
	}
	return f.days(ctx, 0, days)
}

func (f *Fake) History(ctx context.Context, _ measure.Coordinates, days int) ([]models.DayForecast, error) {
	if days < MinHistoryDays || days > MaxHistoryDays {
		return nil, fmt.Errorf("fake history: days %d out of range %d..%d", days, MinHistoryDays, MaxHistoryDays)
	}
	return f.days(ctx, -days, days)
}

// days generates n consecutive days, the first offset days from today.
func (f *Fake) days(ctx context.Context, offset, n int) ([]models.DayForecast, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	today := dateOf(f.clock.Now())
	out := make([]models.DayForecast, n)
	for i := range out {
		out[i] = f.day(today.AddDate(0, 0, offset+i))
	}
	return out, nil
}

func (f *Fake) day(date time.Time) models.DayForecast {
	lowTemp := f.between(-15, 25)
	lowCloud := f.between(0, 80)
	lowHum := f.between(20, 80)
	lowWind := f.between(0, 8)
	lowPres := f.between(980, 1030)

	return models.DayForecast{
		Date:          date,
		Kind:          f.kind(),
		Temperature:   measure.MustRange(measure.DegreesCelsius(lowTemp), measure.DegreesCelsius(lowTemp+f.between(2, 14))),
		CloudCoverage: measure.MustRange(roundPercent(lowCloud), roundPercent(math.Min(100, lowCloud+f.between(0, 60)))),
		Humidity:      measure.MustRange(roundPercent(lowHum), roundPercent(math.Min(100, lowHum+f.between(5, 30)))),
		Wind: models.WindScope{
			Speed:     measure.MustRange(measure.MetersPerSecond(lowWind), measure.MetersPerSecond(lowWind+f.between(0, 12))),
			Direction: measure.Azimuth(f.between(0, 359.9)),
		},
		Pressure: measure.MustRange(measure.Hectopascals(lowPres), measure.Hectopascals(lowPres+f.between(0, 15))),
	}
}

func (f *Fake) kind() models.Kind {
	return fakeKinds[f.rng.IntN(len(fakeKinds))]
}

// roundPercent is for generated values, which always lie in 0..100.
func roundPercent(v float64) measure.Percentage {
	return measure.Percentage(math.Round(v))
}

// between returns a value in [lo, hi) rounded to one decimal.
func (f *Fake) between(lo, hi float64) float64 {
	return math.Round((lo+f.rng.Float64()*(hi-lo))*10) / 10
}
