package recommend

import "github.com/aureapp/aure-backend/internal/models"

// CategorizeTemperature maps a Celsius reading to a coarse bucket. Total over
// all inputs: anything below the cool bound is cold.
func (c Config) CategorizeTemperature(celsius float64) models.TemperatureCategory {
	switch {
	case celsius >= c.HotAbove:
		return models.TempHot
	case celsius >= c.WarmAbove:
		return models.TempWarm
	case celsius >= c.MildAbove:
		return models.TempMild
	case celsius >= c.CoolAbove:
		return models.TempCool
	default:
		return models.TempCold
	}
}

// CategorizeHumidity maps a relative-humidity percent to a coarse bucket.
func (c Config) CategorizeHumidity(percent float64) models.HumidityCategory {
	switch {
	case percent < c.DryBelow:
		return models.HumidityDry
	case percent <= c.ModerateUpTo:
		return models.HumidityModerate
	default:
		return models.HumidityHumid
	}
}
