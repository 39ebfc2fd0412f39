package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWardrobeHasAllCategories(t *testing.T) {
	w := NewWardrobe()
	require.Len(t, w, len(WardrobeCategories))
	for _, category := range WardrobeCategories {
		items, ok := w[category]
		require.True(t, ok)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}
	assert.True(t, w.IsEmpty())
}

func TestIsWardrobeCategory(t *testing.T) {
	for _, category := range WardrobeCategories {
		assert.True(t, IsWardrobeCategory(category))
	}
	assert.False(t, IsWardrobeCategory("hats"))
	assert.False(t, IsWardrobeCategory(""))
}

func TestWardrobeAddAndFind(t *testing.T) {
	w := NewWardrobe()
	w.Add(CategoryTops, WardrobeItem{ID: "a1b2c3d4", Type: "t-shirt", Color: "navy"})
	w.Add(CategoryShoes, WardrobeItem{ID: "deadbeef", Type: "sneakers", Color: "white"})

	assert.False(t, w.IsEmpty())

	item, category, ok := w.Find("deadbeef")
	require.True(t, ok)
	assert.Equal(t, CategoryShoes, category)
	assert.Equal(t, "sneakers", item.Type)

	_, _, ok = w.Find("missing1")
	assert.False(t, ok)
}

func TestWardrobeRemove(t *testing.T) {
	w := NewWardrobe()
	w.Add(CategoryTops, WardrobeItem{ID: "a1b2c3d4", Type: "t-shirt", Color: "navy"})
	w.Add(CategoryTops, WardrobeItem{ID: "e5f6a7b8", Type: "blouse", Color: "cream"})

	assert.True(t, w.Remove(CategoryTops, "a1b2c3d4"))
	require.Len(t, w[CategoryTops], 1)
	assert.Equal(t, "e5f6a7b8", w[CategoryTops][0].ID)

	// same id again, and an id filed under another category
	assert.False(t, w.Remove(CategoryTops, "a1b2c3d4"))
	assert.False(t, w.Remove(CategoryShoes, "e5f6a7b8"))
}

func TestWardrobeNormalizeRestoresCategories(t *testing.T) {
	w := Wardrobe{CategoryTops: []WardrobeItem{{ID: "a1b2c3d4", Type: "t-shirt", Color: "navy"}}}
	w.Normalize()

	require.Len(t, w, len(WardrobeCategories))
	assert.NotNil(t, w[CategoryDresses])
	assert.Len(t, w[CategoryTops], 1)
}

func TestWardrobeItemMissingFields(t *testing.T) {
	assert.Empty(t, WardrobeItem{Type: "t-shirt", Color: "navy"}.MissingFields())
	assert.Equal(t, []string{"type", "color"}, WardrobeItem{}.MissingFields())
	assert.Equal(t, []string{"color"}, WardrobeItem{Type: "t-shirt"}.MissingFields())
}

func TestResolveItemsToleratesDanglingRefs(t *testing.T) {
	w := NewWardrobe()
	w.Add(CategoryTops, WardrobeItem{ID: "a1b2c3d4", Type: "t-shirt", Color: "navy"})

	outfit := Outfit{
		OptionID: 1,
		Items: []OutfitItemRef{
			{Type: "t-shirt", ItemID: "a1b2c3d4"},
			{Type: "jeans", ItemID: "00000000"},
		},
	}

	resolved := outfit.ResolveItems(w)
	require.Len(t, resolved, 2)

	assert.True(t, resolved[0].Found)
	require.NotNil(t, resolved[0].Item)
	assert.Equal(t, "navy", resolved[0].Item.Color)

	assert.False(t, resolved[1].Found)
	assert.Nil(t, resolved[1].Item)
}
