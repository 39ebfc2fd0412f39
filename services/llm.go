package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// LLMModelName selects the Gemini model used for a call.
type LLMModelName int32

const (
	Pro25 LLMModelName = iota
	Flash25
	FlashLite25
	Flash20
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite"
	case Flash20:
		return "gemini-2.0-flash"
	default:
		return "gemini-2.0-flash"
	}
}

func floatPointer(f float32) *float32 {
	return &f
}

// LLMResponse is the model reply plus usage accounting.
type LLMResponse struct {
	Response           string `json:"response"`
	Thoughts           string `json:"thoughts"`
	InputTokenCount    int32  `json:"input_token_count"`
	ThoughtsTokenCount int32  `json:"thoughts_token_count"`
	OutputTokenCount   int32  `json:"output_token_count"`
	TotalTokenCount    int32  `json:"total_token_count"`
}

// ImageUpload is an uploaded image held in memory, sent to the model as
// an inline blob.
type ImageUpload struct {
	Data     []byte
	MIMEType string
}

// LLMStylist is the model service boundary: text and images in, text
// out. Implementations do the transport only; prompt construction and
// response parsing live outside. The api key is passed per call because
// it can be entered at runtime and cached on the session.
type LLMStylist interface {
	AnalyzePortrait(ctx context.Context, apiKey string, image ImageUpload, modelName LLMModelName) (*LLMResponse, error)
	AnalyzeGarment(ctx context.Context, apiKey string, image ImageUpload, modelName LLMModelName) (*LLMResponse, error)
	AnalyzeLocation(ctx context.Context, apiKey string, image ImageUpload, modelName LLMModelName) (*LLMResponse, error)
	GenerateOutfits(ctx context.Context, apiKey string, prompt string, modelName LLMModelName) (*LLMResponse, error)
}

// GoogleLLMStylist talks to the Gemini API.
type GoogleLLMStylist struct{}

func (GoogleLLMStylist) generate(ctx context.Context, apiKey string, parts []*genai.Part, modelName LLMModelName, temperature *float32) (*LLMResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating genai client: %v", err)
	}

	result, err := client.Models.GenerateContent(ctx, modelName.String(), []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		CandidateCount:  1,
		MaxOutputTokens: 50000,
		Temperature:     temperature,
	})
	if err != nil {
		fmt.Println("Error in GenerateContent:", err)
		return nil, fmt.Errorf("%v", err)
	}

	if result.PromptFeedback != nil {
		fmt.Println(result.PromptFeedback.BlockReason)
		fmt.Println(result.PromptFeedback.BlockReasonMessage)
		fmt.Println(result.PromptFeedback.SafetyRatings)
		return nil, fmt.Errorf("content violation: %s", result.PromptFeedback.BlockReasonMessage)
	}

	var inputTokenCount int32
	var thoughtsTokenCount int32
	var outputTokenCount int32
	var totalTokenCount int32
	if result.UsageMetadata != nil {
		inputTokenCount = result.UsageMetadata.PromptTokenCount
		thoughtsTokenCount = result.UsageMetadata.ThoughtsTokenCount
		outputTokenCount = result.UsageMetadata.CandidatesTokenCount
		totalTokenCount = result.UsageMetadata.TotalTokenCount
		fmt.Println("Input token count:", inputTokenCount)
		fmt.Println("Output token count:", outputTokenCount)
		fmt.Println("Total token count:", totalTokenCount)
	} else {
		fmt.Println("UsageMetadata is nil!")
	}

	var thinkingContent string
	for _, c := range result.Candidates {
		fmt.Println("Finish reason: ", c.FinishReason, " Finish message: ", c.FinishMessage)
		for _, rating := range c.SafetyRatings {
			if rating.Blocked {
				return nil, fmt.Errorf("content violation: response blocked because it contains %s", rating.Category)
			}
		}
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if part.Thought && part.Text != "" {
				thinkingContent = part.Text
			}
		}
	}

	return &LLMResponse{
		Response:           result.Text(),
		Thoughts:           thinkingContent,
		InputTokenCount:    inputTokenCount,
		ThoughtsTokenCount: thoughtsTokenCount,
		OutputTokenCount:   outputTokenCount,
		TotalTokenCount:    totalTokenCount,
	}, nil
}

func imageAndTextParts(image ImageUpload, instruction string) []*genai.Part {
	return []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: image.Data}},
		{Text: instruction},
	}
}

func (s GoogleLLMStylist) AnalyzePortrait(ctx context.Context, apiKey string, image ImageUpload, modelName LLMModelName) (*LLMResponse, error) {
	return s.generate(ctx, apiKey, imageAndTextParts(image, PortraitInstruction), modelName, nil)
}

func (s GoogleLLMStylist) AnalyzeGarment(ctx context.Context, apiKey string, image ImageUpload, modelName LLMModelName) (*LLMResponse, error) {
	return s.generate(ctx, apiKey, imageAndTextParts(image, GarmentInstruction), modelName, nil)
}

func (s GoogleLLMStylist) AnalyzeLocation(ctx context.Context, apiKey string, image ImageUpload, modelName LLMModelName) (*LLMResponse, error) {
	return s.generate(ctx, apiKey, imageAndTextParts(image, LocationInstruction), modelName, nil)
}

func (s GoogleLLMStylist) GenerateOutfits(ctx context.Context, apiKey string, prompt string, modelName LLMModelName) (*LLMResponse, error) {
	return s.generate(ctx, apiKey, []*genai.Part{{Text: prompt}}, modelName, floatPointer(0.7))
}
