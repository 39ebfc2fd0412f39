package controllers

import (
	"net/http"

	"stylistapi/models"

	"github.com/labstack/echo/v4"
)

type GenerateOutfitsIn struct {
	Location  string `json:"location"`
	Weather   string `json:"weather"`
	TimeOfDay string `json:"time_of_day"`
	DressCode string `json:"dress_code"`
	Notes     string `json:"notes"`
}

type SaveFavoriteIn struct {
	OptionID *int `json:"option_id" validate:"required"`
}

// OutfitOut is a generated outfit with its item references joined
// against the wardrobe for display.
type OutfitOut struct {
	models.Outfit
	ResolvedItems []models.ResolvedOutfitItem `json:"resolved_items"`
}

type OutfitBatchOut struct {
	Outfits []OutfitOut         `json:"outfits"`
	Context models.StyleContext `json:"context"`
}

type OutfitsController struct {
}

func (controller *OutfitsController) OutfitRoutes(g *echo.Group) {
	g.GET("", controller.LastBatch)
	g.POST("/generate", controller.Generate)
	g.POST("/context/analyze", controller.AnalyzeLocation)
	g.POST("/favorites", controller.SaveFavorite)
	g.GET("/history", controller.History)
}

func resolveOutfits(outfits []models.Outfit, wardrobe models.Wardrobe) []OutfitOut {
	out := make([]OutfitOut, 0, len(outfits))
	for _, outfit := range outfits {
		out = append(out, OutfitOut{
			Outfit:        outfit,
			ResolvedItems: outfit.ResolveItems(wardrobe),
		})
	}
	return out
}

// Generate prompts the model with the profile, the wardrobe and the
// session context, optionally merged with context fields from the
// request body, and returns the new batch.
func (controller *OutfitsController) Generate(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	var req GenerateOutfitsIn
	// body is optional, generation without context is the common case
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	sess.MergeContext(models.StyleContext{
		Location:  req.Location,
		Weather:   req.Weather,
		TimeOfDay: req.TimeOfDay,
		DressCode: req.DressCode,
		Notes:     req.Notes,
	})

	outfits, err := sess.GenerateOutfits(c.Request().Context())
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, OutfitBatchOut{
		Outfits: resolveOutfits(outfits, sess.Wardrobe()),
		Context: sess.Context(),
	})
}

// LastBatch returns the most recent generation with current wardrobe
// resolution, so items removed since generation show up as not found.
func (controller *OutfitsController) LastBatch(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	return c.JSON(http.StatusOK, OutfitBatchOut{
		Outfits: resolveOutfits(sess.LastOutfits(), sess.Wardrobe()),
		Context: sess.Context(),
	})
}

// AnalyzeLocation derives a style context from an uploaded photo of a
// place and stores it on the session for subsequent generations.
func (controller *OutfitsController) AnalyzeLocation(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	image, err := formImage(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	styleCtx, err := sess.AnalyzeLocation(c.Request().Context(), image)
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, styleCtx)
}

// SaveFavorite copies the chosen option from the last batch into the
// persistent history.
func (controller *OutfitsController) SaveFavorite(c echo.Context) error {
	var req SaveFavoriteIn
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
	outfit, err := sess.SaveFavorite(*req.OptionID)
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, outfit)
}

func (controller *OutfitsController) History(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	return c.JSON(http.StatusOK, OutfitBatchOut{
		Outfits: resolveOutfits(sess.History(), sess.Wardrobe()),
		Context: sess.Context(),
	})
}
