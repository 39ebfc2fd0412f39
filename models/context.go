package models

// StyleContext is the optional location/time context an outfit
// generation is conditioned on. It comes from a location photo analysis
// or is set manually, lives on the session only and is never persisted.
type StyleContext struct {
	Location  string `json:"location"`
	Weather   string `json:"weather"`
	TimeOfDay string `json:"time_of_day"`
	DressCode string `json:"dress_code"`
	Notes     string `json:"notes"`
}

func (c StyleContext) IsZero() bool {
	return c == StyleContext{}
}

func (c StyleContext) MissingFields() []string {
	if c.Location == "" {
		return []string{"location"}
	}
	return nil
}
