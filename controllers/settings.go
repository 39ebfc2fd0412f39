package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ConfigureKeyIn struct {
	APIKey string `json:"api_key" validate:"required"`
}

type SettingsController struct {
}

func (controller *SettingsController) SettingsRoutes(g *echo.Group) {
	g.POST("/key", controller.ConfigureKey)
	g.GET("/key", controller.KeyStatus)
}

// ConfigureKey sets the Gemini credential for the rest of the session,
// replacing whatever the environment provided at startup.
func (controller *SettingsController) ConfigureKey(c echo.Context) error {
	var req ConfigureKeyIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	sess.ConfigureKey(req.APIKey)
	return c.JSON(http.StatusOK, map[string]bool{"configured": true})
}

// KeyStatus reports whether a credential is set, never the key itself.
func (controller *SettingsController) KeyStatus(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"configured": sess.HasCredential()})
}
