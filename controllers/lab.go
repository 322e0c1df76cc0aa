package controllers

import (
	"net/http"
	"strings"

	"smartcloset/models"
	"smartcloset/services"
	"smartcloset/session"
	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
)

type LabMessageIn struct {
	Query       string `json:"query" validate:"max=2000"`
	ImageBase64 string `json:"imageBase64"`
	Lang        string `json:"lang" validate:"omitempty,language"`
}

type LabExchangeOut struct {
	UserMessage models.ChatMessage `json:"userMessage"`
	Reply       models.ChatMessage `json:"reply"`
}

// LabController serves the stylist chat. History lives in the session
// storage and survives restarts.
type LabController struct {
	Chat     *session.ChatHistory
	Stylist  services.StylistProvider
	Wardrobe *wardrobe.Store
}

func (controller *LabController) LabRoutes(g *echo.Group) {
	g.GET("/messages", controller.ListMessages)
	g.POST("/messages", controller.SendMessage)
	g.DELETE("/messages", controller.ClearMessages)
}

func (controller *LabController) ListMessages(c echo.Context) error {
	lang := requestLanguage(c, "")
	return c.JSON(http.StatusOK, controller.Chat.Messages(c.Request().Context(), lang))
}

func (controller *LabController) SendMessage(c echo.Context) error {
	var req LabMessageIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	image, err := services.DecodeImageBase64(req.ImageBase64)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid image")
	}
	if len(image) == 0 && strings.TrimSpace(req.Query) == "" {
		return jsonError(c, http.StatusBadRequest, "query or image is required")
	}
	var imageRef *string
	if len(image) > 0 {
		imageRef = services.StrPointer(req.ImageBase64)
	}
	lang := requestLanguage(c, req.Lang)
	userMessage, reply := controller.Chat.Ask(c.Request().Context(), controller.Stylist, controller.Wardrobe.ActiveItems(), req.Query, image, imageRef, lang)
	return c.JSON(http.StatusOK, LabExchangeOut{UserMessage: userMessage, Reply: reply})
}

func (controller *LabController) ClearMessages(c echo.Context) error {
	lang := requestLanguage(c, "")
	return c.JSON(http.StatusOK, controller.Chat.Clear(c.Request().Context(), lang))
}
