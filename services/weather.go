package services

import (
	"context"

	"smartcloset/models"
)

type WeatherProvider interface {
	Current(ctx context.Context) (models.WeatherSnapshot, error)
}

// StaticWeather serves a fixed snapshot for the whole process.
type StaticWeather struct {
	Snapshot models.WeatherSnapshot
}

func NewMockWeather() StaticWeather {
	return StaticWeather{Snapshot: models.WeatherSnapshot{
		Temp:          26,
		Condition:     models.WeatherPartlyCloudy,
		Location:      "Shanghai, CN",
		UVIndex:       6,
		Precipitation: 20,
		WindSpeed:     IntPointer(12),
		Humidity:      IntPointer(45),
	}}
}

func (w StaticWeather) Current(_ context.Context) (models.WeatherSnapshot, error) {
	return w.Snapshot, nil
}
