package controllers

import (
	"net/http"

	"smartcloset/languageutil"
	"smartcloset/models"
	"smartcloset/session"

	"github.com/labstack/echo/v4"
)

// LanguageMiddleware resolves the request language from ?lang= or the
// Accept-Language header. Handlers with a lang body field override it.
func LanguageMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		lang := languageutil.Resolve(c.QueryParam("lang"), c.Request().Header.Get("Accept-Language"))
		c.Set("lang", lang)
		return next(c)
	}
}

func requestLanguage(c echo.Context, explicit string) models.Language {
	if lang := models.Language(explicit); lang.Valid() {
		return lang
	}
	if lang, ok := c.Get("lang").(models.Language); ok {
		return lang
	}
	return models.DefaultLanguage
}

func UserSessionMiddleware(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := store.Current()
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			c.Set("currentUser", user)
			return next(c)
		}
	}
}
