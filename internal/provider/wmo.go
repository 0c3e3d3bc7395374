package provider

import (
	"errors"
	"fmt"

	"github.com/lox/skysay/internal/models"
)

var ErrUnknownWeatherCode = errors.New("unknown weather code")

func rain(i models.Intensity) models.Precipitation {
	return models.Precipitation{Type: models.Rain, Intensity: i}
}

func freezingRain(i models.Intensity) models.Precipitation {
	return models.Precipitation{Type: models.Rain, Intensity: i, Heat: models.HeatFreezing}
}

func snow(i models.Intensity) models.Precipitation {
	return models.Precipitation{Type: models.Snow, Intensity: i}
}

// KindFromWMO maps a WMO 4677 weather interpretation code, as reported by
// Open-Meteo, to a Kind. Drizzle is reported as rain of the matching intensity.
func KindFromWMO(code int) (models.Kind, error) {
	switch code {
	case 0:
		return models.CloudsClear, nil
	case 1:
		return models.CloudsLight, nil
	case 2:
		return models.CloudsModerate, nil
	case 3:
		return models.CloudsDense, nil
	case 45:
		return models.FogNormal, nil
	case 48:
		return models.FogRime, nil
	case 51, 53, 61:
		return rain(models.IntensityLight), nil
	case 55, 63:
		return rain(models.IntensityModerate), nil
	case 65:
		return rain(models.IntensityHeavy), nil
	case 56, 66:
		return freezingRain(models.IntensityLight), nil
	case 57:
		return freezingRain(models.IntensityModerate), nil
	case 67:
		return freezingRain(models.IntensityHeavy), nil
	case 71, 77:
		return snow(models.IntensityLight), nil
	case 73:
		return snow(models.IntensityModerate), nil
	case 75:
		return snow(models.IntensityHeavy), nil
	case 80, 81, 82:
		return rain(models.IntensityShower), nil
	case 85, 86:
		return snow(models.IntensityShower), nil
	case 95, 96, 99:
		return models.Thunderstorm{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWeatherCode, code)
	}
}

// wmoBySeverity lists every known code from mildest to most severe. Within an
// intensity, snow outranks rain and freezing rain outranks both; showers rank
// with the steady precipitation of the same strength.
var wmoBySeverity = []int{
	0, 1, 2, 3,
	45, 48,
	51, 53, 61, 80, 71, 77, 85,
	55, 63, 81, 73,
	56, 66, 57,
	65, 82, 75, 86, 67,
	95, 96, 99,
}

var wmoRank = func() map[int]int {
	rank := make(map[int]int, len(wmoBySeverity))
	for i, code := range wmoBySeverity {
		rank[code] = i
	}
	return rank
}()

// moreSevere reports whether code a describes worse weather than code b.
func moreSevere(a, b int) bool {
	return wmoRank[a] > wmoRank[b]
}
