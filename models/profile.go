package models

// ProfileAttributes is the structure the portrait analysis prompt asks
// the model to return. The active profile itself is kept as the raw
// analysis text (the user may edit it freely); these attributes are the
// shape downstream outfit prompting relies on existing inside that text.
type ProfileAttributes struct {
	BodyShape         string   `json:"body_shape"`
	SkinTone          string   `json:"skin_tone"`
	RecommendedColors []string `json:"recommended_colors"`
	AvoidStyles       []string `json:"avoid_styles"`
	Notes             string   `json:"notes"`
}

func (p ProfileAttributes) MissingFields() []string {
	var missing []string
	if p.BodyShape == "" {
		missing = append(missing, "body_shape")
	}
	if p.SkinTone == "" {
		missing = append(missing, "skin_tone")
	}
	return missing
}
