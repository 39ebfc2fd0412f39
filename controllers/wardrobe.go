package controllers

import (
	"fmt"
	"net/http"

	"stylistapi/models"

	"github.com/labstack/echo/v4"
)

type WardrobeController struct {
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.GET("", controller.ListWardrobe)
	g.POST("/:category", controller.AddItem)
	g.DELETE("/:category/:id", controller.RemoveItem)
	g.POST("/purge", controller.PurgeMissing)
}

// ListWardrobe returns every category bucket, empty ones included.
func (controller *WardrobeController) ListWardrobe(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	return c.JSON(http.StatusOK, sess.Wardrobe())
}

// AddItem uploads a garment photo into the category, has the model
// describe it and stores the resulting item. The item id is generated
// here, never taken from the client.
func (controller *WardrobeController) AddItem(c echo.Context) error {
	category := c.Param("category")
	if !models.IsWardrobeCategory(category) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Unknown category: %s", category)})
	}
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	image, err := formImage(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	item, err := sess.AnalyzeGarment(c.Request().Context(), category, image)
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (controller *WardrobeController) RemoveItem(c echo.Context) error {
	category := c.Param("category")
	if !models.IsWardrobeCategory(category) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Unknown category: %s", category)})
	}
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	if err := sess.RemoveItem(category, c.Param("id")); err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed"})
}

// PurgeMissing drops items whose image file no longer exists on disk
// and returns the cleaned wardrobe.
func (controller *WardrobeController) PurgeMissing(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	wardrobe, err := sess.PurgeMissing()
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, wardrobe)
}
