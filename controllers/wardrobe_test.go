package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"stylistapi/models"
	"stylistapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemOk(t *testing.T) {
	e, _, sess := setupTestServer(t, "env-key")

	req := test.NewImageRequest("POST", "/wardrobe/tops", "image", "shirt.png", []byte("fake image bytes"))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var item models.WardrobeItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Len(t, item.ID, 8)
	assert.Equal(t, "t-shirt", item.Type)
	assert.Equal(t, "navy", item.Color)
	assert.FileExists(t, item.ImagePath)
	assert.Len(t, sess.Wardrobe()[models.CategoryTops], 1)
}

func TestAddItemUnknownCategory(t *testing.T) {
	e, stylist, _ := setupTestServer(t, "env-key")

	req := test.NewImageRequest("POST", "/wardrobe/hats", "image", "hat.jpg", []byte("fake image bytes"))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stylist.Calls)
}

func TestAddItemModelGarbageResponse(t *testing.T) {
	e, stylist, sess := setupTestServer(t, "env-key")
	stylist.GarmentResponse = "I cannot help with that."

	req := test.NewImageRequest("POST", "/wardrobe/tops", "image", "shirt.jpg", []byte("fake image bytes"))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "I cannot help with that.", response["raw_response"])
	assert.True(t, sess.Wardrobe().IsEmpty())
}

func TestListWardrobe(t *testing.T) {
	e, _, _ := setupTestServer(t, "env-key")

	addReq := test.NewImageRequest("POST", "/wardrobe/shoes", "image", "sneakers.jpg", []byte("fake image bytes"))
	addRec := httptest.NewRecorder()
	e.ServeHTTP(addRec, addReq)
	require.Equal(t, http.StatusCreated, addRec.Code)

	req := test.NewJSONRequest("GET", "/wardrobe", "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response map[string][]models.WardrobeItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, len(models.WardrobeCategories))
	assert.Len(t, response[models.CategoryShoes], 1)
	assert.Empty(t, response[models.CategoryTops])
}

func TestRemoveItemOk(t *testing.T) {
	e, _, sess := setupTestServer(t, "env-key")

	addReq := test.NewImageRequest("POST", "/wardrobe/tops", "image", "shirt.jpg", []byte("fake image bytes"))
	addRec := httptest.NewRecorder()
	e.ServeHTTP(addRec, addReq)
	require.Equal(t, http.StatusCreated, addRec.Code)
	var item models.WardrobeItem
	require.NoError(t, json.Unmarshal(addRec.Body.Bytes(), &item))

	req := test.NewJSONRequest("DELETE", fmt.Sprintf("/wardrobe/tops/%s", item.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sess.Wardrobe().IsEmpty())
}

func TestRemoveItemNotFound(t *testing.T) {
	e, _, _ := setupTestServer(t, "env-key")

	req := test.NewJSONRequest("DELETE", "/wardrobe/tops/00000000", "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPurgeMissingEndpoint(t *testing.T) {
	e, _, _ := setupTestServer(t, "env-key")

	addReq := test.NewImageRequest("POST", "/wardrobe/tops", "image", "shirt.jpg", []byte("fake image bytes"))
	addRec := httptest.NewRecorder()
	e.ServeHTTP(addRec, addReq)
	require.Equal(t, http.StatusCreated, addRec.Code)
	var item models.WardrobeItem
	require.NoError(t, json.Unmarshal(addRec.Body.Bytes(), &item))
	require.NoError(t, os.Remove(item.ImagePath))

	req := test.NewJSONRequest("POST", "/wardrobe/purge", "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response map[string][]models.WardrobeItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response[models.CategoryTops])
}
