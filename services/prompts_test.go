package services

import (
	"testing"

	"stylistapi/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildOutfitPromptContainsInputs(t *testing.T) {
	profile := "Body shape: hourglass. Recommended colors: olive, cream."
	wardrobe := `{"tops": [{"id": "a1b2c3d4", "type": "t-shirt"}]}`

	prompt := BuildOutfitPrompt(profile, wardrobe, models.StyleContext{})

	assert.Contains(t, prompt, profile)
	assert.Contains(t, prompt, wardrobe)
	assert.Contains(t, prompt, "3 personalized outfit options")
	assert.Contains(t, prompt, "only use the items available in the wardrobe")
	assert.Contains(t, prompt, "recommended_colors")
	assert.Contains(t, prompt, "avoid_styles")
	assert.Contains(t, prompt, `"outfit_options"`)
}

func TestBuildOutfitPromptWithoutContext(t *testing.T) {
	prompt := BuildOutfitPrompt("profile", "{}", models.StyleContext{})
	assert.NotContains(t, prompt, "Context for the occasion")
	assert.NotContains(t, prompt, "location and time of day")
}

func TestBuildOutfitPromptWithContext(t *testing.T) {
	styleCtx := models.StyleContext{
		Location:  "beachside cafe",
		Weather:   "sunny",
		TimeOfDay: "afternoon",
		DressCode: "casual",
		Notes:     "light fabrics",
	}
	prompt := BuildOutfitPrompt("profile", "{}", styleCtx)

	assert.Contains(t, prompt, "Context for the occasion")
	assert.Contains(t, prompt, "Location: beachside cafe")
	assert.Contains(t, prompt, "Weather: sunny")
	assert.Contains(t, prompt, "Time of day: afternoon")
	assert.Contains(t, prompt, "Dress code: casual")
	assert.Contains(t, prompt, "Notes: light fabrics")
	assert.Contains(t, prompt, "Respect the supplied location and time of day context.")
}

func TestBuildOutfitPromptPartialContextSkipsEmptyLines(t *testing.T) {
	prompt := BuildOutfitPrompt("profile", "{}", models.StyleContext{Location: "office"})
	assert.Contains(t, prompt, "Location: office")
	assert.NotContains(t, prompt, "Weather:")
	assert.NotContains(t, prompt, "Dress code:")
}

func TestBuildOutfitPromptDeterministic(t *testing.T) {
	styleCtx := models.StyleContext{Location: "office", Weather: "cold"}
	first := BuildOutfitPrompt("p", "{}", styleCtx)
	second := BuildOutfitPrompt("p", "{}", styleCtx)
	assert.Equal(t, first, second)
}
