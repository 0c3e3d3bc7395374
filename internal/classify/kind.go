package classify

import (
	"fmt"

	"github.com/lox/skysay/internal/models"
)

var skyAdjectives = [...]string{
	models.CloudsClear:    "clear",
	models.CloudsLight:    "mostly clear",
	models.CloudsModerate: "cloudy",
	models.CloudsDense:    "overcast",
}

// SkyAdjective describes a cloud cover, e.g. "mostly clear".
func SkyAdjective(c models.Clouds) string {
	if int(c) >= len(skyAdjectives) {
		panic(fmt.Sprintf("classify: unknown cloud cover %d", c))
	}
	return skyAdjectives[c]
}

var intensityWords = [...]string{
	models.IntensityLight:    "light",
	models.IntensityModerate: "moderate",
	models.IntensityHeavy:    "heavy",
	models.IntensityShower:   "shower",
}

var precipitationWords = [...]string{
	models.Rain: "rain",
	models.Snow: "snow",
}

// PrecipitationPhrase composes "[freezing ]<intensity> <rain|snow>".
func PrecipitationPhrase(p models.Precipitation) string {
	phrase := intensityWords[p.Intensity] + " " + precipitationWords[p.Type]
	if p.Heat == models.HeatFreezing {
		phrase = "freezing " + phrase
	}
	return phrase
}

// KindPhrase returns the tense-neutral description of a weather kind,
// e.g. "overcast sky", "rime fog", "freezing light rain" or "thunderstorm".
func KindPhrase(k models.Kind) string {
	switch k := k.(type) {
	case models.Clouds:
		return SkyAdjective(k) + " sky"
	case models.Fog:
		if k == models.FogRime {
			return "rime fog"
		}
		return "fog"
	case models.Precipitation:
		return PrecipitationPhrase(k)
	case models.Thunderstorm:
		return "thunderstorm"
	default:
		panic(fmt.Sprintf("classify: unknown weather kind %T", k))
	}
}
