package controllers

import (
	"path/filepath"
	"testing"

	"stylistapi/session"
	"stylistapi/storage"
	"stylistapi/test"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, apiKey string) (*echo.Echo, *test.MockStylist, *session.Session) {
	t.Helper()
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "data"), filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	stylist := &test.MockStylist{}
	sess := session.New(store, stylist, apiKey)
	return SetupServer(sess), stylist, sess
}
