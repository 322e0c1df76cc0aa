package controllers

import (
	"net/http"

	"smartcloset/models"
	"smartcloset/session"

	"github.com/labstack/echo/v4"
)

type LoginIn struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"max=200"`
	Password     string `json:"password" validate:"max=200"`
}

type RegisterIn struct {
	Name         string `json:"name" validate:"required,max=100"`
	EmailOrPhone string `json:"emailOrPhone" validate:"required,max=200"`
	Password     string `json:"password" validate:"required,max=200"`
}

// AuthController drives the mock session. Credentials are never verified.
type AuthController struct {
	Session *session.Store
}

func (controller *AuthController) AuthRoutes(g *echo.Group) {
	g.POST("/login", controller.Login)
	g.POST("/register", controller.Register)
	g.POST("/logout", controller.Logout)

	userGroup := g.Group("", UserSessionMiddleware(controller.Session))
	userGroup.GET("/me", controller.Me)
	userGroup.PATCH("/profile", controller.UpdateProfile)
}

func (controller *AuthController) Login(c echo.Context) error {
	var req LoginIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	if !controller.Session.Login(c.Request().Context(), req.EmailOrPhone, req.Password) {
		return jsonError(c, http.StatusUnauthorized, "Login failed")
	}
	user, _ := controller.Session.Current()
	return c.JSON(http.StatusOK, user)
}

func (controller *AuthController) Register(c echo.Context) error {
	var req RegisterIn
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	if !controller.Session.Register(c.Request().Context(), req.Name, req.EmailOrPhone, req.Password) {
		return jsonError(c, http.StatusBadRequest, "Registration failed")
	}
	user, _ := controller.Session.Current()
	return c.JSON(http.StatusCreated, user)
}

func (controller *AuthController) Logout(c echo.Context) error {
	controller.Session.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (controller *AuthController) Me(c echo.Context) error {
	user := c.Get("currentUser").(models.User)
	return c.JSON(http.StatusOK, user)
}

func (controller *AuthController) UpdateProfile(c echo.Context) error {
	var req models.UserUpdate
	if msg, ok := bindAndValidate(c, &req); !ok {
		return jsonError(c, http.StatusBadRequest, msg)
	}
	user, ok := controller.Session.UpdateProfile(c.Request().Context(), req)
	if !ok {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, user)
}
