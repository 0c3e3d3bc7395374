package models

// Kind is the sky or precipitation condition of a moment or period. Exactly
// one Kind describes a report: Clouds, Fog, Precipitation or Thunderstorm.
type Kind interface {
	isKind()
}

// Clouds is a dry sky described by its cover.
type Clouds uint8

const (
	CloudsClear Clouds = iota
	CloudsLight
	CloudsModerate
	CloudsDense
)

// Fog is reduced visibility near the ground.
type Fog uint8

const (
	FogNormal Fog = iota
	FogRime
)

type PrecipitationType uint8

const (
	Rain PrecipitationType = iota
	Snow
)

type Intensity uint8

const (
	IntensityLight Intensity = iota
	IntensityModerate
	IntensityHeavy
	IntensityShower
)

type Heat uint8

const (
	HeatNormal Heat = iota
	HeatFreezing
)

// Precipitation combines what falls, how hard, and whether it freezes on contact.
type Precipitation struct {
	Type      PrecipitationType
	Intensity Intensity
	Heat      Heat
}

type Thunderstorm struct{}

func (Clouds) isKind()        {}
func (Fog) isKind()           {}
func (Precipitation) isKind() {}
func (Thunderstorm) isKind()  {}
