package controllers

import (
	"errors"
	"net/http"

	"smartcloset/models"
	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
)

type OutfitIn struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Occasion    *string  `json:"occasion" validate:"omitempty,max=100"`
	ItemIDs     []string `json:"itemIds" validate:"required,min=1,dive,required"`
}

type OutfitsController struct {
	Wardrobe *wardrobe.Store
}

func (controller *OutfitsController) OutfitRoutes(g *echo.Group) {
	g.GET("", controller.ListOutfits)
	g.POST("", controller.CreateOutfit)
	g.GET("/:id", controller.GetOutfit)
	g.PUT("/:id", controller.UpdateOutfit)
	g.DELETE("/:id", controller.DeleteOutfit)
	g.POST("/:id/wear", controller.LogWear)
	g.DELETE("/:id/wear", controller.UndoWear)
}

func (controller *OutfitsController) ListOutfits(c echo.Context) error {
	closet := controller.Wardrobe.Items()
	details := []wardrobe.OutfitDetail{}
	for _, outfit := range controller.Wardrobe.Outfits() {
		details = append(details, wardrobe.DescribeOutfit(outfit, closet))
	}
	return c.JSON(http.StatusOK, details)
}

func (controller *OutfitsController) CreateOutfit(c echo.Context) error {
	var req OutfitIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	outfit := controller.Wardrobe.AddOutfit(models.SavedOutfit{
		Name:        req.Name,
		Description: req.Description,
		Occasion:    req.Occasion,
		ItemIDs:     req.ItemIDs,
	})
	return c.JSON(http.StatusCreated, wardrobe.DescribeOutfit(outfit, controller.Wardrobe.Items()))
}

func (controller *OutfitsController) GetOutfit(c echo.Context) error {
	outfit, err := controller.Wardrobe.Outfit(c.Param("id"))
	if errors.Is(err, wardrobe.ErrOutfitNotFound) {
		return jsonError(c, http.StatusNotFound, "Outfit not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wardrobe.DescribeOutfit(outfit, controller.Wardrobe.Items()))
}

// UpdateOutfit replaces the editable fields and keeps the wear log.
func (controller *OutfitsController) UpdateOutfit(c echo.Context) error {
	var req OutfitIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	outfit, err := controller.Wardrobe.Outfit(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusNotFound, "Outfit not found")
	}
	outfit.Name = req.Name
	outfit.Description = req.Description
	outfit.Occasion = req.Occasion
	outfit.ItemIDs = req.ItemIDs
	if !controller.Wardrobe.UpdateOutfit(outfit) {
		return jsonError(c, http.StatusNotFound, "Outfit not found")
	}
	return c.JSON(http.StatusOK, wardrobe.DescribeOutfit(outfit, controller.Wardrobe.Items()))
}

func (controller *OutfitsController) DeleteOutfit(c echo.Context) error {
	controller.Wardrobe.DeleteOutfit(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (controller *OutfitsController) LogWear(c echo.Context) error {
	return controller.mutateWear(c, controller.Wardrobe.LogOutfitWear)
}

func (controller *OutfitsController) UndoWear(c echo.Context) error {
	return controller.mutateWear(c, controller.Wardrobe.UndoOutfitWear)
}

func (controller *OutfitsController) mutateWear(c echo.Context, mutate func(id string) (models.SavedOutfit, error)) error {
	outfit, err := mutate(c.Param("id"))
	if errors.Is(err, wardrobe.ErrOutfitNotFound) {
		return jsonError(c, http.StatusNotFound, "Outfit not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wardrobe.DescribeOutfit(outfit, controller.Wardrobe.Items()))
}
