package services

import (
	"fmt"
	"strings"

	"stylistapi/models"
)

// Fixed instruction templates paired with an uploaded image. Each asks
// the model for one specific JSON shape; the response extractor and the
// record validators are the other half of the contract.

const PortraitInstruction = `Analyze the person's figure and skin tone. Return in this JSON format:
{
  "body_shape": "",
  "skin_tone": "",
  "recommended_colors": [],
  "avoid_styles": [],
  "notes": ""
}`

const GarmentInstruction = `Analyze this clothing item and return in this JSON format:
{
  "type": "",
  "color": "",
  "pattern": "",
  "style": "",
  "occasions": []
}`

const LocationInstruction = `Analyze this photo of a place or venue. Describe the environment and what clothing would be appropriate there. Return in this JSON format:
{
  "location": "",
  "weather": "",
  "time_of_day": "",
  "dress_code": "",
  "notes": ""
}`

// BuildOutfitPrompt interpolates the profile text, the wardrobe
// serialized as JSON and the optional style context into the outfit
// generation prompt. Pure function of its inputs, no I/O. The
// constraints are instructed, not enforced: the model is told to stay
// within the wardrobe, the recommended colors and the supplied context.
func BuildOutfitPrompt(profile string, wardrobeJSON string, styleCtx models.StyleContext) string {
	var b strings.Builder
	b.WriteString("You're an expert stylist.\n")
	b.WriteString("Use the following profile and available wardrobe items to suggest 3 personalized outfit options:\n\n")
	b.WriteString("Profile:\n")
	b.WriteString(profile)
	b.WriteString("\n\nWardrobe:\n")
	b.WriteString(wardrobeJSON)
	b.WriteString("\n")
	if !styleCtx.IsZero() {
		b.WriteString("\nContext for the occasion:\n")
		if styleCtx.Location != "" {
			fmt.Fprintf(&b, "Location: %s\n", styleCtx.Location)
		}
		if styleCtx.Weather != "" {
			fmt.Fprintf(&b, "Weather: %s\n", styleCtx.Weather)
		}
		if styleCtx.TimeOfDay != "" {
			fmt.Fprintf(&b, "Time of day: %s\n", styleCtx.TimeOfDay)
		}
		if styleCtx.DressCode != "" {
			fmt.Fprintf(&b, "Dress code: %s\n", styleCtx.DressCode)
		}
		if styleCtx.Notes != "" {
			fmt.Fprintf(&b, "Notes: %s\n", styleCtx.Notes)
		}
	}
	b.WriteString(`
Generate outfits that only use the items available in the wardrobe.
Only use colors from recommended_colors in the profile.
Avoid styles from avoid_styles in the profile.
`)
	if !styleCtx.IsZero() {
		b.WriteString("Respect the supplied location and time of day context.\n")
	}
	b.WriteString(`Return in JSON format with 3 outfit options.
The output should have this structure:
{
  "outfit_options": [
    {
      "option_id": 1,
      "name": "Name of outfit",
      "description": "Brief description",
      "items": [
        {
          "type": "top/bottom/etc",
          "item_id": "item ID from wardrobe"
        }
      ],
      "occasions": ["casual", "work", etc],
      "weather": "suitable weather condition",
      "time_of_day": "suitable time of day",
      "location_appropriateness": "why it fits the location"
    }
  ]
}`)
	return b.String()
}
