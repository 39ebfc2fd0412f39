package models

// OutfitItemRef points into the wardrobe by item id. The reference is
// weak: the item may have been removed since the outfit was generated,
// so resolution has to tolerate absence.
type OutfitItemRef struct {
	Type   string `json:"type"`
	ItemID string `json:"item_id"`
}

// Outfit is one generated outfit option. OptionID is scoped to a single
// generation batch (1..3 normally) and collides across batches; it is
// never treated as a global identity.
type Outfit struct {
	OptionID                int             `json:"option_id"`
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	Items                   []OutfitItemRef `json:"items"`
	Occasions               []string        `json:"occasions"`
	Weather                 string          `json:"weather"`
	TimeOfDay               *string         `json:"time_of_day,omitempty"`
	LocationAppropriateness *string         `json:"location_appropriateness,omitempty"`
}

// OutfitOptions is the JSON shape the outfit generation prompt requests
// from the model.
type OutfitOptions struct {
	OutfitOptions []Outfit `json:"outfit_options"`
}

func (o OutfitOptions) MissingFields() []string {
	if o.OutfitOptions == nil {
		return []string{"outfit_options"}
	}
	return nil
}

// ResolvedOutfitItem is an outfit item reference joined against the
// wardrobe for display. Found is false when the reference no longer
// resolves; Item is nil in that case.
type ResolvedOutfitItem struct {
	Type   string        `json:"type"`
	ItemID string        `json:"item_id"`
	Found  bool          `json:"found"`
	Item   *WardrobeItem `json:"item,omitempty"`
}

// ResolveItems joins the outfit's item references against the wardrobe.
// Dangling references come back with Found false instead of failing the
// whole outfit.
func (o Outfit) ResolveItems(w Wardrobe) []ResolvedOutfitItem {
	resolved := make([]ResolvedOutfitItem, 0, len(o.Items))
	for _, ref := range o.Items {
		r := ResolvedOutfitItem{Type: ref.Type, ItemID: ref.ItemID}
		if item, _, ok := w.Find(ref.ItemID); ok {
			r.Found = true
			r.Item = &item
		}
		resolved = append(resolved, r)
	}
	return resolved
}
