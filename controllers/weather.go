package controllers

import (
	"fmt"
	"net/http"

	"smartcloset/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	Weather services.WeatherProvider
}

func (controller *WeatherController) WeatherRoutes(g *echo.Group) {
	g.GET("", func(c echo.Context) error {
		snapshot, err := controller.Weather.Current(c.Request().Context())
		if err != nil {
			sentry.CaptureException(fmt.Errorf("weather lookup: %w", err))
			return jsonError(c, http.StatusServiceUnavailable, "Weather unavailable")
		}
		return c.JSON(http.StatusOK, snapshot)
	})
}
