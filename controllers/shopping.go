package controllers

import (
	"net/http"

	"smartcloset/services"
	"smartcloset/session"
	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
)

type ShoppingController struct {
	Wardrobe *wardrobe.Store
	Chat     *session.ChatHistory
}

func (controller *ShoppingController) ShoppingRoutes(g *echo.Group) {
	g.GET("/links", controller.Links)
}

// Links builds marketplace searches from a wardrobe item (?itemId=), a free
// query (?q=) or a stylist reply (?content=), in that order of preference.
// A reply is searched by the user question that preceded it.
func (controller *ShoppingController) Links(c echo.Context) error {
	if id := c.QueryParam("itemId"); id != "" {
		item, err := controller.Wardrobe.Item(id)
		if err != nil {
			return jsonError(c, http.StatusNotFound, "Item not found")
		}
		keywords := services.ItemShoppingKeywords(item, requestLanguage(c, ""))
		return c.JSON(http.StatusOK, services.BuildShoppingLinks(keywords))
	}

	query := c.QueryParam("q")
	if query == "" {
		if content := c.QueryParam("content"); content != "" {
			query = controller.Chat.PrecedingUserQuery(c.Request().Context(), content)
		}
	}
	return c.JSON(http.StatusOK, services.BuildShoppingLinks(services.ChatShoppingKeywords(query)))
}
