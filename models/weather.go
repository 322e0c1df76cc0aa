package models

import "github.com/go-playground/validator"

type WeatherCondition string

const (
	WeatherSunny        WeatherCondition = "Sunny"
	WeatherCloudy       WeatherCondition = "Cloudy"
	WeatherRain         WeatherCondition = "Rain"
	WeatherSnow         WeatherCondition = "Snow"
	WeatherPartlyCloudy WeatherCondition = "Partly Cloudy"
)

type WeatherSnapshot struct {
	Temp          int              `json:"temp"`
	Condition     WeatherCondition `json:"condition" validate:"required,weather_condition"`
	Location      string           `json:"location"`
	UVIndex       int              `json:"uvIndex" validate:"gte=0"`
	Precipitation int              `json:"precipitation" validate:"gte=0,lte=100"`
	WindSpeed     *int             `json:"windSpeed,omitempty"`
	Humidity      *int             `json:"humidity,omitempty"`
}

func ValidateWeatherCondition(fl validator.FieldLevel) bool {
	switch WeatherCondition(fl.Field().String()) {
	case WeatherSunny, WeatherCloudy, WeatherRain, WeatherSnow, WeatherPartlyCloudy:
		return true
	}
	return false
}
