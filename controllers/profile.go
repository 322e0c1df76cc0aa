package controllers

import (
	"net/http"

	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
)

type ProfileStatsOut struct {
	wardrobe.ProfileStats
	Inspirations int `json:"inspirations"`
}

type ProfileController struct {
	Wardrobe     *wardrobe.Store
	Inspirations *wardrobe.InspirationBoard
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, ProfileStatsOut{
			ProfileStats: controller.Wardrobe.Stats(),
			Inspirations: controller.Inspirations.Count(),
		})
	})
}
