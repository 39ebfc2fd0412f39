package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"stylistapi/services"
	"stylistapi/session"

	"github.com/labstack/echo/v4"
)

// currentSession pulls the styling session injected by SetupServer.
func currentSession(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get("__session").(*session.Session)
	return sess, ok
}

// sessionErrorResponse maps session failures onto HTTP responses. Model
// call failures surface as 502 since the upstream service misbehaved,
// and extraction failures additionally carry the raw model text so the
// client can show what came back instead of a blank error.
func sessionErrorResponse(c echo.Context, err error) error {
	var sessErr *session.Error
	if errors.As(err, &sessErr) {
		switch sessErr.Kind {
		case session.KindCredentialMissing:
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Gemini API key is not configured, set it first"})
		case session.KindTransportFailure:
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "Model service call failed, please try again"})
		case session.KindMalformedJSON:
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error":        "Model returned a response that could not be parsed",
				"raw_response": sessErr.Raw,
			})
		case session.KindSchemaMismatch:
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error":        "Model response is missing expected fields",
				"raw_response": sessErr.Raw,
			})
		case session.KindPersistenceFailure:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save data, please try again"})
		}
	}
	switch {
	case errors.Is(err, session.ErrNoProfile):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Create your style profile first"})
	case errors.Is(err, session.ErrEmptyWardrobe):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Add some items to your wardrobe first"})
	case errors.Is(err, session.ErrUnknownOption):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Option is not in the last generated batch"})
	case errors.Is(err, session.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something happened"})
}

// formImage reads the uploaded image from the multipart field and
// rejects anything that is not an accepted image type.
func formImage(c echo.Context, field string) (services.ImageUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return services.ImageUpload{}, fmt.Errorf("missing %s file: %w", field, err)
	}
	if !services.IsAllowedImage(fileHeader.Filename) {
		return services.ImageUpload{}, fmt.Errorf("unsupported image type: %s", fileHeader.Filename)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return services.ImageUpload{}, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return services.ImageUpload{}, err
	}
	return services.ImageUpload{
		Data:     data,
		MIMEType: services.ImageMIMEType(fileHeader.Filename),
	}, nil
}
