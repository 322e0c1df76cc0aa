package controllers

import (
	"net/http"

	"smartcloset/models"
	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
)

type InspirationIn struct {
	Content string   `json:"content" validate:"required,max=10000"`
	Folder  string   `json:"folder" validate:"omitempty,folder"`
	Date    string   `json:"date" validate:"omitempty,len=10"`
	Tags    []string `json:"tags" validate:"max=20,dive,max=50"`
}

type InspirationsController struct {
	Board *wardrobe.InspirationBoard
}

func (controller *InspirationsController) InspirationRoutes(g *echo.Group) {
	g.GET("", func(c echo.Context) error {
		folder := c.QueryParam("folder")
		if folder != "" && !models.ValidateFolderRaw(folder) {
			return jsonError(c, http.StatusBadRequest, "Invalid folder")
		}
		return c.JSON(http.StatusOK, controller.Board.List(models.InspirationFolder(folder)))
	})

	g.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"saved": controller.Board.IsSaved(c.QueryParam("content"))})
	})

	g.POST("", func(c echo.Context) error {
		var req InspirationIn
		if msg, ok := bindAndValidate(c, &req); !ok {
			return jsonError(c, http.StatusBadRequest, msg)
		}
		saved := controller.Board.Save(models.SavedInspiration{
			Content: req.Content,
			Folder:  models.InspirationFolder(req.Folder),
			Date:    req.Date,
			Tags:    req.Tags,
		})
		return c.JSON(http.StatusCreated, saved)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		controller.Board.Delete(c.Param("id"))
		return c.NoContent(http.StatusNoContent)
	})
}
