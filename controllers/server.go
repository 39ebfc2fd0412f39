package controllers

import (
	"net/http"

	"stylistapi/session"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		// Optionally, you could return the error to give each route more control over the status code
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func SetupServer(sess *session.Session) *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__session", sess)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	settingsController := SettingsController{}
	settingsController.SettingsRoutes(e.Group("/settings"))

	profileController := ProfileController{}
	profileController.ProfileRoutes(e.Group("/profile"))

	wardrobeController := WardrobeController{}
	wardrobeController.WardrobeRoutes(e.Group("/wardrobe"))

	outfitsController := OutfitsController{}
	outfitsController.OutfitRoutes(e.Group("/outfits"))

	return e
}
