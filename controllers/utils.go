package controllers

import (
	"github.com/labstack/echo/v4"
)

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// bindAndValidate binds the body and runs the struct validator. The returned
// message is ready for a 400 response.
func bindAndValidate(c echo.Context, req interface{}) (string, bool) {
	if err := c.Bind(req); err != nil {
		return "Invalid request body", false
	}
	if err := c.Validate(req); err != nil {
		return err.Error(), false
	}
	return "", true
}
