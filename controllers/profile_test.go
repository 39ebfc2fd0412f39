package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylistapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileEmpty(t *testing.T) {
	e, _, _ := setupTestServer(t, "env-key")

	req := test.NewJSONRequest("GET", "/profile", "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response ProfileOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Nil(t, response.Profile)
}

func TestUpdateProfileOk(t *testing.T) {
	e, _, sess := setupTestServer(t, "env-key")

	req := test.NewJSONRequest("PUT", "/profile", UpdateProfileIn{Profile: "Body shape: rectangle."})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sess.Profile())
	assert.Equal(t, "Body shape: rectangle.", *sess.Profile())
}

func TestUpdateProfileMissingBody(t *testing.T) {
	e, _, _ := setupTestServer(t, "env-key")

	req := test.NewJSONRequest("PUT", "/profile", UpdateProfileIn{})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzePortraitOk(t *testing.T) {
	e, _, sess := setupTestServer(t, "env-key")

	req := test.NewImageRequest("POST", "/profile/analyze", "image", "me.jpg", []byte("fake image bytes"))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response["profile"], "hourglass")
	require.NotNil(t, sess.Profile())
}

func TestAnalyzePortraitNoCredential(t *testing.T) {
	e, stylist, _ := setupTestServer(t, "")

	req := test.NewImageRequest("POST", "/profile/analyze", "image", "me.jpg", []byte("fake image bytes"))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, stylist.Calls)
}

func TestAnalyzePortraitRejectsNonImage(t *testing.T) {
	e, stylist, _ := setupTestServer(t, "env-key")

	req := test.NewImageRequest("POST", "/profile/analyze", "image", "me.pdf", []byte("%PDF-1.4"))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stylist.Calls)
}

func TestAnalyzePortraitMissingFile(t *testing.T) {
	e, _, _ := setupTestServer(t, "env-key")

	req := test.NewJSONRequest("POST", "/profile/analyze", "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
