package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type UpdateProfileIn struct {
	Profile string `json:"profile" validate:"required"`
}

type ProfileOut struct {
	Profile *string `json:"profile"`
}

type ProfileController struct {
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("", controller.GetProfile)
	g.PUT("", controller.UpdateProfile)
	g.POST("/analyze", controller.AnalyzePortrait)
}

func (controller *ProfileController) GetProfile(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	return c.JSON(http.StatusOK, ProfileOut{Profile: sess.Profile()})
}

// UpdateProfile replaces the stored profile text wholesale with the
// manually edited version.
func (controller *ProfileController) UpdateProfile(c echo.Context) error {
	var req UpdateProfileIn
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
	if err := sess.UpdateProfile(req.Profile); err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ProfileOut{Profile: sess.Profile()})
}

// AnalyzePortrait accepts a full-body photo upload and replaces the
// profile with the model's analysis of it.
func (controller *ProfileController) AnalyzePortrait(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	image, err := formImage(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	profile, err := sess.AnalyzePortrait(c.Request().Context(), image)
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"profile": profile})
}
