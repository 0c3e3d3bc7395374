package narrative

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/models"
)

func testDay(date time.Time, kind models.Kind) models.DayForecast {
	return models.DayForecast{
		Date:          date,
		Kind:          kind,
		Temperature:   measure.MustRange(measure.DegreesCelsius(12), measure.DegreesCelsius(22.4)),
		CloudCoverage: measure.MustRange(measure.Percentage(20), measure.Percentage(60)),
		Humidity:      measure.MustRange(measure.Percentage(40), measure.Percentage(55)),
		Wind: models.WindScope{
			Speed:     measure.MustRange(measure.MetersPerSecond(1), measure.MetersPerSecond(3.1)),
			Direction: 200.2,
		},
		Pressure: measure.MustRange(measure.Hectopascals(1001), measure.Hectopascals(1009.3)),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name       string
		conditions models.Conditions
		want       string
	}{
		{
			name: "mild cloudy afternoon",
			conditions: models.Conditions{
				Kind:          models.CloudsModerate,
				Temperature:   measure.DegreesCelsius(22.4),
				CloudCoverage: 75,
				Humidity:      55,
				Wind:          models.Wind{Speed: measure.MetersPerSecond(2.1), Direction: 200.2},
				Pressure:      measure.Hectopascals(1009.3),
			},
			want: "It is warm at 22.4°C and the sky is cloudy with 75% cloud coverage.\n" +
				"The air is humid at 55% with gentle breeze from the South blowing at 2.1 m/s.\n" +
				"Low pressure stands at 1009.3 hPa.\n",
		},
		{
			name: "still frozen storm",
			conditions: models.Conditions{
				Kind:          models.Thunderstorm{},
				Temperature:   measure.DegreesCelsius(-3),
				CloudCoverage: 0,
				Humidity:      90,
				Wind:          models.Wind{Speed: measure.MetersPerSecond(0.1), Direction: 10},
				Pressure:      measure.Hectopascals(1035),
			},
			want: "It is freezing at -3.0°C and there is a thunderstorm with no clouds.\n" +
				"There is heavy humidity at 90% with no wind.\n" +
				"Very high pressure stands at 1035.0 hPa.\n",
		},
		{
			name: "freezing drizzle",
			conditions: models.Conditions{
				Kind:          models.Precipitation{Type: models.Rain, Intensity: models.IntensityLight, Heat: models.HeatFreezing},
				Temperature:   measure.DegreesCelsius(0.5),
				CloudCoverage: 100,
				Humidity:      12,
				Wind:          models.Wind{Speed: measure.MetersPerSecond(14), Direction: 300},
				Pressure:      measure.Hectopascals(998.04),
			},
			want: "It is cold at 0.5°C and there is freezing light rain with 100% cloud coverage.\n" +
				"There is very dry humidity at 12% with very strong wind from the Northwest blowing at 14.0 m/s.\n" +
				"Very low pressure stands at 998.0 hPa.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Current(models.CurrentFull{Conditions: tt.conditions})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentNoCloudsNeverPrintsZeroPercent(t *testing.T) {
	for _, kind := range []models.Kind{models.CloudsClear, models.FogNormal, models.Thunderstorm{}} {
		got := Current(models.CurrentFull{Conditions: models.Conditions{Kind: kind, CloudCoverage: 0}})
		assert.Contains(t, got, "with no clouds")
		assert.NotContains(t, got, "0% cloud coverage")
	}
}

func TestDescribePressure(t *testing.T) {
	assert.Equal(t, "Low pressure stands at 1009.3 hPa", DescribePressure(measure.Hectopascals(1009.3)))
	assert.Equal(t, "Normal pressure stands at 1013.2 hPa", DescribePressure(measure.Hectopascals(1013.2)))
}

func TestToday(t *testing.T) {
	got := Today(models.TodayFull{Day: testDay(date(2026, 10, 19), models.Precipitation{Type: models.Rain})})

	want := "Today it will be warm with temperatures from 12.0°C to 22.4°C and there will be light rain with 20% to 60% cloud coverage.\n" +
		"The air will be humid from 40% to 55% with mostly gentle breeze from the South blowing at 1.0 m/s to maximum 3.1 m/s.\n" +
		"Mostly low pressure will stand at lowest 1001.0 hPa up to 1009.3 hPa.\n"
	assert.Equal(t, want, got)
}

func TestTodayCalmClearDay(t *testing.T) {
	day := testDay(date(2026, 10, 19), models.CloudsClear)
	day.CloudCoverage = measure.MustRange(measure.Percentage(0), measure.Percentage(0))
	day.Wind.Speed = measure.MustRange(measure.MetersPerSecond(0), measure.MetersPerSecond(0.2))
	day.Humidity = measure.MustRange(measure.Percentage(70), measure.Percentage(92))

	got := Today(models.TodayFull{Day: day})

	assert.Contains(t, got, "and the sky will be clear with no clouds.\n")
	assert.Contains(t, got, "There will be heavy humidity from 70% to 92% with no wind.\n")
	assert.NotContains(t, got, "blowing")
}

func TestMultiDayHeaders(t *testing.T) {
	// Dates are deliberately unrelated to "now": headers depend on position only.
	r := models.MultiDayFull{Days: []models.DayForecast{
		testDay(date(2020, 1, 1), models.CloudsLight),
		testDay(date(2031, 7, 4), models.FogRime),
		testDay(date(2026, 12, 24), models.Precipitation{Type: models.Snow, Intensity: models.IntensityHeavy}),
		testDay(date(2026, 12, 25), models.Thunderstorm{}),
	}}

	blocks := strings.Split(MultiDay(r), "\n\n")
	require.Len(t, blocks, 4)
	assert.True(t, strings.HasPrefix(blocks[0], "Today it will be"), blocks[0])
	assert.True(t, strings.HasPrefix(blocks[1], "Tomorrow it will be"), blocks[1])
	assert.True(t, strings.HasPrefix(blocks[2], "On 24.12.2026 it will be"), blocks[2])
	assert.True(t, strings.HasPrefix(blocks[3], "On 25.12.2026 it will be"), blocks[3])

	assert.Contains(t, blocks[0], "the sky will be mostly clear")
	assert.Contains(t, blocks[1], "there will be rime fog")
	assert.Contains(t, blocks[2], "there will be heavy snow")
	assert.Contains(t, blocks[3], "there will be a thunderstorm")
	assert.True(t, strings.HasSuffix(blocks[3], ".\n"))
}

func TestMultiDayEmpty(t *testing.T) {
	assert.Equal(t, "", MultiDay(models.MultiDayFull{}))
}

func TestPast(t *testing.T) {
	r := models.PastFull{Days: []models.DayForecast{
		testDay(date(2026, 10, 16), models.CloudsDense),
		testDay(date(2026, 10, 17), models.FogNormal),
		testDay(date(2026, 10, 18), models.CloudsDense),
	}}

	got := Past(r)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 11) // 3 blocks of 3 lines, one separator, trailing newline
	assert.True(t, strings.HasPrefix(lines[0], "On 16.10.2026 it was warm"))
	assert.True(t, strings.HasPrefix(lines[3], "On 17.10.2026 it was warm"))
	assert.Equal(t, "", lines[6])
	assert.True(t, strings.HasPrefix(lines[7], "Yesterday it was warm"))
	assert.Equal(t, "", lines[10])

	assert.Contains(t, lines[0], "and the sky was overcast with 20% to 60% cloud coverage")
	assert.Contains(t, lines[3], "and there was fog")
	assert.Equal(t, "The air was humid from 40% to 55% with mostly gentle breeze from the South blowing at 1.0 m/s to maximum 3.1 m/s.", lines[8])
	assert.Equal(t, "Mostly low pressure stood at lowest 1001.0 hPa up to 1009.3 hPa.", lines[9])
}

func TestPastSingleDayHasNoSeparator(t *testing.T) {
	got := Past(models.PastFull{Days: []models.DayForecast{testDay(date(2026, 10, 18), models.CloudsClear)}})
	assert.True(t, strings.HasPrefix(got, "Yesterday it was warm"))
	assert.NotContains(t, got, "\n\n")
}

func TestNilKindPanics(t *testing.T) {
	assert.Panics(t, func() { Current(models.CurrentFull{}) })
}

func TestDayBlockTenses(t *testing.T) {
	d := testDay(date(2026, 10, 18), models.CloudsDense)
	tests := []struct {
		tense Tense
		want  string
	}{
		{PresentTense, "Today it is warm"},
		{FutureTense, "Today it will be warm"},
		{PastTense, "Today it was warm"},
	}
	for _, tt := range tests {
		got := dayBlock(d, "Today", tt.tense)
		assert.True(t, strings.HasPrefix(got, tt.want), "got %q", got)
	}
	assert.Contains(t, dayBlock(d, "Yesterday", PastTense), "pressure stood at lowest")
	assert.Contains(t, dayBlock(d, "Today", FutureTense), "pressure will stand at lowest")
}
