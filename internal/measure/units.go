package measure

// unitSpec describes how a unit is printed.
type unitSpec struct {
	symbol string
	spaced bool
}

func (u unitSpec) suffix() string {
	if u.spaced {
		return " " + u.symbol
	}
	return u.symbol
}

// TemperatureUnit is the closed set of supported temperature units.
type TemperatureUnit uint8

const (
	Celsius TemperatureUnit = iota
)

var temperatureUnits = map[TemperatureUnit]unitSpec{
	Celsius: {symbol: "°C"},
}

func (u TemperatureUnit) spec() unitSpec { return temperatureUnits[u] }

func (u TemperatureUnit) String() string { return u.spec().symbol }

func (u TemperatureUnit) toCelsius(v float64) float64 {
	switch u {
	case Celsius:
		return v
	default:
		panic("measure: unknown temperature unit")
	}
}

// SpeedUnit is the closed set of supported speed units.
type SpeedUnit uint8

const (
	MPS SpeedUnit = iota
)

var speedUnits = map[SpeedUnit]unitSpec{
	MPS: {symbol: "m/s", spaced: true},
}

func (u SpeedUnit) spec() unitSpec { return speedUnits[u] }

func (u SpeedUnit) String() string { return u.spec().symbol }

func (u SpeedUnit) toMPS(v float64) float64 {
	switch u {
	case MPS:
		return v
	default:
		panic("measure: unknown speed unit")
	}
}

// PressureUnit is the closed set of supported pressure units.
type PressureUnit uint8

const (
	HPa PressureUnit = iota
)

var pressureUnits = map[PressureUnit]unitSpec{
	HPa: {symbol: "hPa", spaced: true},
}

func (u PressureUnit) spec() unitSpec { return pressureUnits[u] }

func (u PressureUnit) String() string { return u.spec().symbol }

func (u PressureUnit) toHPa(v float64) float64 {
	switch u {
	case HPa:
		return v
	default:
		panic("measure: unknown pressure unit")
	}
}
