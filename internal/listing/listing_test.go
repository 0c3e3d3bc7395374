package listing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

var berlin = measure.Coordinates{Lat: 52.52, Lon: 13.405}

func testConditions() models.Conditions {
	return models.Conditions{
		Kind:          models.Precipitation{Type: models.Snow, Intensity: models.IntensityShower},
		Temperature:   measure.DegreesCelsius(22.4),
		CloudCoverage: 64,
		Humidity:      81,
		Wind:          models.Wind{Speed: measure.MetersPerSecond(42.5), Direction: 200.2},
		Pressure:      measure.Hectopascals(1009.3),
	}
}

func testDay(d time.Time) models.DayForecast {
	return models.DayForecast{
		Date:          d,
		Kind:          models.FogRime,
		Temperature:   measure.MustRange(measure.DegreesCelsius(-2), measure.DegreesCelsius(4.3)),
		CloudCoverage: measure.MustRange(measure.Percentage(90), measure.Percentage(100)),
		Humidity:      measure.MustRange(measure.Percentage(88), measure.Percentage(97)),
		Wind: models.WindScope{
			Speed:     measure.MustRange(measure.MetersPerSecond(0.4), measure.MetersPerSecond(2)),
			Direction: 45,
		},
		Pressure: measure.MustRange(measure.Hectopascals(1021), measure.Hectopascals(1024.6)),
	}
}

func TestDescribeWind(t *testing.T) {
	got := DescribeWind(models.Wind{Speed: measure.MetersPerSecond(42.5), Direction: 200.2})
	assert.Equal(t, "42.5 m/s, 200.2° (S)", got)
}

func TestCurrentSelected(t *testing.T) {
	r := models.CurrentFull{Coordinates: berlin, Conditions: testConditions()}
	got := Current(r.Select(models.NewAttributeSet(models.AttrTemperature, models.AttrHumidity)))

	assert.Equal(t, "Coordinates: 52.52000°, 13.40500°\nTemperature: 22.4°C\nHumidity: 81%", got)
}

func TestCurrentAll(t *testing.T) {
	r := models.CurrentFull{Coordinates: berlin, Conditions: testConditions()}
	got := Current(r.Select(models.AllAttributes()))

	want := "Coordinates: 52.52000°, 13.40500°\n" +
		"Weather: Shower snow\n" +
		"Temperature: 22.4°C\n" +
		"Cloud coverage: 64%\n" +
		"Humidity: 81%\n" +
		"Wind: 42.5 m/s, 200.2° (S)\n" +
		"Pressure: 1009.3 hPa"
	assert.Equal(t, want, got)
}

func TestCurrentLineCount(t *testing.T) {
	r := models.CurrentFull{Coordinates: berlin, Conditions: testConditions()}
	all := models.AllAttributes().Attributes()

	// Every subset of the six attributes.
	for mask := 0; mask < 1<<len(all); mask++ {
		var set models.AttributeSet
		for i, a := range all {
			if mask&(1<<i) != 0 {
				set = set.With(a)
			}
		}
		got := Current(r.Select(set))
		lines := strings.Split(got, "\n")
		assert.Len(t, lines, len(set.Attributes())+1, "set %q", set)
		assert.False(t, strings.HasSuffix(got, "\n"))
		if !set.Has(models.AttrPressure) {
			assert.NotContains(t, got, "Pressure")
		}
		if !set.Has(models.AttrWind) {
			assert.NotContains(t, got, "Wind")
		}
	}
}

func TestToday(t *testing.T) {
	r := models.TodayFull{Coordinates: berlin, Day: testDay(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))}
	got := Today(r.Select(models.AllAttributes()))

	want := "Coordinates: 52.52000°, 13.40500°\n" +
		"Weather: Rime fog\n" +
		"Temperature: -2.0°C - 4.3°C\n" +
		"Cloud coverage: 90% - 100%\n" +
		"Humidity: 88% - 97%\n" +
		"Wind: 0.4 m/s - 2.0 m/s, 45.0° (NE)\n" +
		"Pressure: 1021.0 hPa - 1024.6 hPa"
	assert.Equal(t, want, got)
}

func TestMultiDay(t *testing.T) {
	r := models.MultiDayFull{Coordinates: berlin, Days: []models.DayForecast{
		testDay(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)),
		testDay(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)),
	}}
	got := MultiDay(r.Select(models.NewAttributeSet(models.AttrWeatherKind, models.AttrPressure)))

	want := "Coordinates: 52.52000°, 13.40500°\n" +
		"\n" +
		"Date: 19.10.2026\n" +
		"Weather: Rime fog\n" +
		"Pressure: 1021.0 hPa - 1024.6 hPa\n" +
		"\n" +
		"Date: 20.10.2026\n" +
		"Weather: Rime fog\n" +
		"Pressure: 1021.0 hPa - 1024.6 hPa"
	assert.Equal(t, want, got)
}

func TestMultiDayEmptySelection(t *testing.T) {
	r := models.MultiDayFull{Coordinates: berlin, Days: []models.DayForecast{
		testDay(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)),
	}}
	got := MultiDay(r.Select(0))

	blocks := strings.Split(got, "\n\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "Date: 19.10.2026", blocks[1])
}
