package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"smartcloset/models"
	"smartcloset/services"
	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ClothingItemIn is the writable part of a wardrobe item. Season accepts the
// model's aliases of "All Year" and is normalized before storing.
type ClothingItemIn struct {
	ImageURL         string   `json:"imageUrl" validate:"max=15000000"`
	Category         string   `json:"category" validate:"required,category"`
	Color            string   `json:"color" validate:"required,max=100"`
	Season           string   `json:"season" validate:"required,season"`
	Description      string   `json:"description" validate:"max=500"`
	Brand            *string  `json:"brand" validate:"omitempty,max=100"`
	Material         *string  `json:"material" validate:"omitempty,max=100"`
	PurchaseDate     *string  `json:"purchaseDate" validate:"omitempty,len=10"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	ShopLink         *string  `json:"shopLink" validate:"omitempty,url"`
	WearCount        int      `json:"wearCount" validate:"gte=0"`
	Rating           *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	CareInstructions []string `json:"careInstructions" validate:"max=20"`
	IsArchived       bool     `json:"isArchived"`
}

func (in ClothingItemIn) toItem(id string) models.ClothingItem {
	season, _ := models.ParseSeason(in.Season)
	return models.ClothingItem{
		ID:               id,
		ImageURL:         in.ImageURL,
		Category:         models.Category(in.Category),
		Color:            in.Color,
		Season:           season,
		Description:      in.Description,
		Brand:            in.Brand,
		Material:         in.Material,
		PurchaseDate:     in.PurchaseDate,
		Price:            in.Price,
		ShopLink:         in.ShopLink,
		WearCount:        in.WearCount,
		Rating:           in.Rating,
		CareInstructions: in.CareInstructions,
		IsArchived:       in.IsArchived,
	}
}

// ClothingItemDetail is an item with its wear economics and shopping links.
type ClothingItemDetail struct {
	models.ClothingItem
	CostPerWear float64                `json:"costPerWear"`
	Shopping    services.ShoppingLinks `json:"shopping"`
}

type ClothesController struct {
	Wardrobe *wardrobe.Store
}

func (controller *ClothesController) ClothingRoutes(g *echo.Group) {
	g.GET("", controller.ListClothes)
	g.POST("", controller.CreateClothing)
	g.GET("/:id", controller.GetClothing)
	g.PUT("/:id", controller.UpdateClothing)
	g.DELETE("/:id", controller.DeleteClothing)
}

func (controller *ClothesController) ListClothes(c echo.Context) error {
	filter := wardrobe.Filter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	}
	if raw := c.QueryParam("season"); raw != "" {
		season, ok := models.ParseSeason(raw)
		if !ok {
			return jsonError(c, http.StatusBadRequest, "Invalid season")
		}
		filter.Season = season
	}
	if filter.Category != "" && filter.Category != models.CategoryAll && !models.ValidateCategoryRaw(filter.Category) {
		return jsonError(c, http.StatusBadRequest, "Invalid category")
	}
	if raw := c.QueryParam("archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			return jsonError(c, http.StatusBadRequest, "Invalid archived flag")
		}
		filter.IncludeArchived = archived
	}
	return c.JSON(http.StatusOK, controller.Wardrobe.Search(filter))
}

func (controller *ClothesController) CreateClothing(c echo.Context) error {
	var req ClothingItemIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	item := controller.Wardrobe.AddItem(req.toItem(""))
	log.Ctx(c.Request().Context()).Info().Str("item_id", item.ID).Str("category", string(item.Category)).Msg("clothing item added")
	return c.JSON(http.StatusCreated, item)
}

func (controller *ClothesController) GetClothing(c echo.Context) error {
	item, err := controller.Wardrobe.Item(c.Param("id"))
	if errors.Is(err, wardrobe.ErrItemNotFound) {
		return jsonError(c, http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return err
	}
	lang := requestLanguage(c, "")
	return c.JSON(http.StatusOK, ClothingItemDetail{
		ClothingItem: item,
		CostPerWear:  wardrobe.CostPerWear(item),
		Shopping:     services.BuildShoppingLinks(services.ItemShoppingKeywords(item, lang)),
	})
}

func (controller *ClothesController) UpdateClothing(c echo.Context) error {
	var req ClothingItemIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	item := req.toItem(c.Param("id"))
	if !controller.Wardrobe.UpdateItem(item) {
		return jsonError(c, http.StatusNotFound, "Item not found")
	}
	return c.JSON(http.StatusOK, item)
}

func (controller *ClothesController) DeleteClothing(c echo.Context) error {
	controller.Wardrobe.DeleteItem(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
