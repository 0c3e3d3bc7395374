package classify

import "github.com/lox/skysay/internal/measure"

type threshold[L any] struct {
	upper float64
	level L
}

func bucket[L any](v float64, table []threshold[L], above L) L {
	for _, t := range table {
		if v <= t.upper {
			return t.level
		}
	}
	return above
}

// TemperatureLevel grades air temperature from freezing to very hot.
type TemperatureLevel uint8

const (
	Freezing TemperatureLevel = iota
	Cold
	Cool
	Warm
	Hot
	VeryHot
)

var temperatureLabels = [...]string{
	Freezing: "freezing",
	Cold:     "cold",
	Cool:     "cool",
	Warm:     "warm",
	Hot:      "hot",
	VeryHot:  "very hot",
}

func (l TemperatureLevel) String() string { return temperatureLabels[l] }

var temperatureTable = []threshold[TemperatureLevel]{
	{0, Freezing},
	{10, Cold},
	{17, Cool},
	{24, Warm},
	{35, Hot},
}

func Temperature(t measure.Temperature) TemperatureLevel {
	return bucket(t.Celsius(), temperatureTable, VeryHot)
}

func TemperatureRange(r measure.TemperatureRange) TemperatureLevel {
	return Temperature(r.Max())
}

// HumidityLevel grades relative humidity.
type HumidityLevel uint8

const (
	VeryDry HumidityLevel = iota
	Dry
	Humid
	VeryHumid
	HeavyHumidity
)

var humidityLabels = [...]struct {
	label string
	noun  bool
}{
	VeryDry:       {"very dry humidity", true},
	Dry:           {"dry humidity", true},
	Humid:         {"humid", false},
	VeryHumid:     {"very humid", false},
	HeavyHumidity: {"heavy humidity", true},
}

func (l HumidityLevel) String() string { return humidityLabels[l].label }

// IsNoun reports whether the label reads as a noun phrase ("dry humidity")
// rather than an adjective ("humid").
func (l HumidityLevel) IsNoun() bool { return humidityLabels[l].noun }

var humidityTable = []threshold[HumidityLevel]{
	{15, VeryDry},
	{30, Dry},
	{60, Humid},
	{85, VeryHumid},
}

func Humidity(p measure.Percentage) HumidityLevel {
	return bucket(float64(p), humidityTable, HeavyHumidity)
}

func HumidityRange(r measure.PercentageRange) HumidityLevel {
	return Humidity(r.Max())
}

// WindLevel grades wind speed.
type WindLevel uint8

const (
	NoWind WindLevel = iota
	GentleBreeze
	PlainWind
	StrongWind
	VeryStrongWind
)

var windLabels = [...]string{
	NoWind:         "no wind",
	GentleBreeze:   "gentle breeze",
	PlainWind:      "wind",
	StrongWind:     "strong wind",
	VeryStrongWind: "very strong wind",
}

func (l WindLevel) String() string { return windLabels[l] }

var windTable = []threshold[WindLevel]{
	{0.2, NoWind},
	{3.3, GentleBreeze},
	{8.0, PlainWind},
	{13.8, StrongWind},
}

func WindSpeed(s measure.Speed) WindLevel {
	return bucket(s.MetersPerSecond(), windTable, VeryStrongWind)
}

func WindSpeedRange(r measure.SpeedRange) WindLevel {
	return WindSpeed(r.Max())
}

// PressureLevel grades sea-level pressure.
type PressureLevel uint8

const (
	VeryLowPressure PressureLevel = iota
	LowPressure
	NormalPressure
	HighPressure
	VeryHighPressure
)

var pressureLabels = [...]string{
	VeryLowPressure:  "very low pressure",
	LowPressure:      "low pressure",
	NormalPressure:   "normal pressure",
	HighPressure:     "high pressure",
	VeryHighPressure: "very high pressure",
}

func (l PressureLevel) String() string { return pressureLabels[l] }

var pressureTable = []threshold[PressureLevel]{
	{1000, VeryLowPressure},
	{1010, LowPressure},
	{1020, NormalPressure},
	{1030, HighPressure},
}

func Pressure(p measure.Pressure) PressureLevel {
	return bucket(p.Hectopascals(), pressureTable, VeryHighPressure)
}

func PressureRange(r measure.PressureRange) PressureLevel {
	return Pressure(r.Max())
}
