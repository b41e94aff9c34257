package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
)

func TestWeatherService_ByCoords(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,relative_humidity_2m,weather_code", r.URL.Query().Get("current"))
		fmt.Fprint(w, `{"current":{"temperature_2m":31.4,"relative_humidity_2m":72,"weather_code":95}}`)
	}))
	defer forecast.Close()

	svc := NewWeatherService(forecast.URL, "", recommend.DefaultConfig(), nil)
	report, err := svc.ByCoords(context.Background(), 38.72, -9.14)
	require.NoError(t, err)

	assert.InDelta(t, 31.4, report.Temperature, 0.001)
	assert.Equal(t, models.TempHot, report.TemperatureCategory)
	assert.Equal(t, models.HumidityHumid, report.HumidityCategory)
	assert.Equal(t, "Thunderstorm", report.Condition)
	assert.Equal(t, "Current location", report.Location)
}

func TestWeatherService_ByCity(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"current":{"temperature_2m":9.0,"relative_humidity_2m":35,"weather_code":0}}`)
	}))
	defer forecast.Close()

	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Lisbon" {
			fmt.Fprint(w, `{"results":[{"latitude":38.72,"longitude":-9.14,"name":"Lisbon","country":"Portugal"}]}`)
			return
		}
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer geocode.Close()

	svc := NewWeatherService(forecast.URL, geocode.URL, recommend.DefaultConfig(), nil)

	t.Run("known city", func(t *testing.T) {
		report, err := svc.ByCity(context.Background(), "Lisbon")
		require.NoError(t, err)

		assert.Equal(t, "Lisbon, Portugal", report.Location)
		assert.Equal(t, models.TempCool, report.TemperatureCategory)
		assert.Equal(t, models.HumidityDry, report.HumidityCategory)
		assert.Equal(t, "Clear", report.Condition)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := svc.ByCity(context.Background(), "Nowhereville")
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})
}

func TestWeatherService_UpstreamFailure(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer forecast.Close()

	svc := NewWeatherService(forecast.URL, "", recommend.DefaultConfig(), nil)
	_, err := svc.ByCoords(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestConditionFromCode(t *testing.T) {
	cases := map[int]string{
		0:  "Clear",
		2:  "Partly cloudy",
		45: "Foggy",
		55: "Drizzle",
		63: "Rainy",
		73: "Snowy",
		81: "Showers",
		85: "Snow showers",
		96: "Thunderstorm",
		90: "Cloudy",
	}
	for code, want := range cases {
		assert.Equal(t, want, conditionFromCode(code), "code %d", code)
	}
}
