package models

// The five fixed buckets a wardrobe item can live under. The category is
// the key the item is stored under, never a field on the item itself:
// moving an item between categories means removing it from one bucket
// and inserting it into another.
const (
	CategoryTops        = "tops"
	CategoryBottoms     = "bottoms"
	CategoryDresses     = "dresses"
	CategoryShoes       = "shoes"
	CategoryAccessories = "accessories"
)

var WardrobeCategories = []string{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryShoes,
	CategoryAccessories,
}

func IsWardrobeCategory(category string) bool {
	for _, c := range WardrobeCategories {
		if c == category {
			return true
		}
	}
	return false
}

// WardrobeItem is one analyzed clothing item. Type/Color/Pattern/Style/
// Occasions come straight from the model's garment analysis; ID and
// ImagePath are attached at creation.
type WardrobeItem struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Color     string   `json:"color"`
	Pattern   string   `json:"pattern"`
	Style     string   `json:"style"`
	Occasions []string `json:"occasions"`
	ImagePath string   `json:"image_path"`
}

// MissingFields reports which fields a garment analysis must carry but
// does not. Used to detect a schema mismatch right after parsing instead
// of failing later on a lookup.
func (item WardrobeItem) MissingFields() []string {
	var missing []string
	if item.Type == "" {
		missing = append(missing, "type")
	}
	if item.Color == "" {
		missing = append(missing, "color")
	}
	return missing
}

// Wardrobe maps each category to its ordered items. Every category key
// is always present, even when empty; Normalize restores that invariant
// after decoding from disk.
type Wardrobe map[string][]WardrobeItem

func NewWardrobe() Wardrobe {
	w := make(Wardrobe, len(WardrobeCategories))
	for _, category := range WardrobeCategories {
		w[category] = []WardrobeItem{}
	}
	return w
}

func (w Wardrobe) Normalize() Wardrobe {
	for _, category := range WardrobeCategories {
		if w[category] == nil {
			w[category] = []WardrobeItem{}
		}
	}
	return w
}

func (w Wardrobe) Add(category string, item WardrobeItem) {
	w[category] = append(w[category], item)
}

// Remove deletes the item with the given id from the category bucket,
// reporting whether anything was removed.
func (w Wardrobe) Remove(category string, id string) bool {
	items := w[category]
	for i, item := range items {
		if item.ID == id {
			w[category] = append(items[:i:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// Find looks the id up across all buckets. The boolean is false when the
// id does not resolve; callers must treat that as "not found", never as
// corruption, because outfit item references are weak.
func (w Wardrobe) Find(id string) (WardrobeItem, string, bool) {
	for _, category := range WardrobeCategories {
		for _, item := range w[category] {
			if item.ID == id {
				return item, category, true
			}
		}
	}
	return WardrobeItem{}, "", false
}

func (w Wardrobe) IsEmpty() bool {
	for _, items := range w {
		if len(items) > 0 {
			return false
		}
	}
	return true
}
