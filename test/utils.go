package test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"stylistapi/services"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// NewImageRequest builds a multipart upload carrying one image file
// under the given form field.
func NewImageRequest(method string, target string, field string, fileName string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile(field, fileName)
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest(method, target, &body)
	req.Header.Add("Content-Type", writer.FormDataContentType())
	req.Header.Add("Accept", "application/json")
	return req
}

// Canned model responses in the shapes the analyzers request. The
// garment one is fence-wrapped on purpose, that is how the model
// usually answers.
const (
	MockPortraitJSON = `{
		"body_shape": "hourglass",
		"skin_tone": "warm",
		"recommended_colors": ["olive", "cream", "rust"],
		"avoid_styles": ["boxy oversized"],
		"notes": "Fitted silhouettes work best."
	}`

	MockGarmentJSON = "```json\n" + `{
		"type": "t-shirt",
		"color": "navy",
		"pattern": "solid",
		"style": "casual",
		"occasions": ["casual", "everyday"]
	}` + "\n```"

	MockLocationJSON = `{
		"location": "beachside cafe",
		"weather": "sunny, around 28C",
		"time_of_day": "afternoon",
		"dress_code": "casual",
		"notes": "Light breathable fabrics."
	}`
)

func MockOutfitsJSON(itemIDs ...string) string {
	items := ""
	for i, id := range itemIDs {
		if i > 0 {
			items += ","
		}
		items += `{"type": "t-shirt", "item_id": "` + id + `"}`
	}
	return `{
		"outfit_options": [
			{
				"option_id": 1,
				"name": "Casual Day Out",
				"description": "Relaxed and comfortable.",
				"items": [` + items + `],
				"occasions": ["casual"],
				"weather": "warm"
			},
			{
				"option_id": 2,
				"name": "Evening Look",
				"description": "A bit more polished.",
				"items": [` + items + `],
				"occasions": ["dinner"],
				"weather": "mild"
			}
		]
	}`
}

// MockStylist implements services.LLMStylist with canned responses.
// Setting Err makes every call fail with it; setting a response field
// overrides the default for that analyzer. The last generation prompt
// is recorded for assertions.
type MockStylist struct {
	PortraitResponse string
	GarmentResponse  string
	LocationResponse string
	OutfitsResponse  string
	Err              error

	LastPrompt string
	LastAPIKey string
	Calls      int
}

func (m *MockStylist) respond(override string, fallback string) (*services.LLMResponse, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	response := fallback
	if override != "" {
		response = override
	}
	return &services.LLMResponse{
		Response:         response,
		InputTokenCount:  10,
		OutputTokenCount: 13,
		TotalTokenCount:  23,
	}, nil
}

func (m *MockStylist) AnalyzePortrait(ctx context.Context, apiKey string, image services.ImageUpload, modelName services.LLMModelName) (*services.LLMResponse, error) {
	m.LastAPIKey = apiKey
	return m.respond(m.PortraitResponse, MockPortraitJSON)
}

func (m *MockStylist) AnalyzeGarment(ctx context.Context, apiKey string, image services.ImageUpload, modelName services.LLMModelName) (*services.LLMResponse, error) {
	m.LastAPIKey = apiKey
	return m.respond(m.GarmentResponse, MockGarmentJSON)
}

func (m *MockStylist) AnalyzeLocation(ctx context.Context, apiKey string, image services.ImageUpload, modelName services.LLMModelName) (*services.LLMResponse, error) {
	m.LastAPIKey = apiKey
	return m.respond(m.LocationResponse, MockLocationJSON)
}

func (m *MockStylist) GenerateOutfits(ctx context.Context, apiKey string, prompt string, modelName services.LLMModelName) (*services.LLMResponse, error) {
	m.LastAPIKey = apiKey
	m.LastPrompt = prompt
	return m.respond(m.OutfitsResponse, MockOutfitsJSON())
}
