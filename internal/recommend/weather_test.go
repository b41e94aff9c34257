package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aureapp/aure-backend/internal/models"
)

func TestCategorizeTemperature(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		celsius float64
		want    models.TemperatureCategory
	}{
		{45, models.TempHot},
		{30, models.TempHot},
		{29.999, models.TempWarm},
		{23, models.TempWarm},
		{22.999, models.TempMild},
		{15, models.TempMild},
		{14.999, models.TempCool},
		{5, models.TempCool},
		{4.999, models.TempCold},
		{-20, models.TempCold},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cfg.CategorizeTemperature(tc.celsius), "%v°C", tc.celsius)
	}
}

func TestCategorizeHumidity(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		percent float64
		want    models.HumidityCategory
	}{
		{0, models.HumidityDry},
		{39.999, models.HumidityDry},
		{40, models.HumidityModerate},
		{65, models.HumidityModerate},
		{65.001, models.HumidityHumid},
		{100, models.HumidityHumid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cfg.CategorizeHumidity(tc.percent), "%v%%", tc.percent)
	}
}
