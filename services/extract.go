package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"stylistapi/models"
)

const (
	fenceMarker     = "```"
	jsonFenceMarker = "```json"
)

// MalformedJSONError means the model reply could not be parsed as JSON
// at all. Raw keeps the full original text so the caller can surface it
// for diagnosis; it is never dropped silently.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model response: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// SchemaMismatchError means the reply parsed as JSON but required fields
// of the expected record are absent.
type SchemaMismatchError struct {
	Raw     string
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("model response is missing expected fields: %s", strings.Join(e.Missing, ", "))
}

// ExtractJSON strips an optional markdown code fence from a model reply
// and returns the JSON payload text. If the reply contains a
// json-tagged fence, the content between it and the next closing fence
// is taken; if the whole reply is wrapped in a generic fence, exactly
// one marker is stripped from each end; otherwise the text is returned
// unmodified, so the routine is safe to run on already-bare JSON.
func ExtractJSON(raw string) string {
	if idx := strings.Index(raw, jsonFenceMarker); idx != -1 {
		rest := raw[idx+len(jsonFenceMarker):]
		if end := strings.Index(rest, fenceMarker); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if strings.HasPrefix(raw, fenceMarker) && strings.HasSuffix(raw, fenceMarker) && len(raw) > 2*len(fenceMarker) {
		return strings.TrimSpace(raw[len(fenceMarker) : len(raw)-len(fenceMarker)])
	}
	return raw
}

func decodeRecord(raw string, v any) error {
	cleaned := ExtractJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &MalformedJSONError{Raw: raw, Err: err}
	}
	return nil
}

// DecodeGarment parses a garment analysis reply into a WardrobeItem
// (id and image path are attached by the caller).
func DecodeGarment(raw string) (models.WardrobeItem, error) {
	var item models.WardrobeItem
	if err := decodeRecord(raw, &item); err != nil {
		return models.WardrobeItem{}, err
	}
	if missing := item.MissingFields(); len(missing) > 0 {
		return models.WardrobeItem{}, &SchemaMismatchError{Raw: raw, Missing: missing}
	}
	return item, nil
}

// DecodeProfileAttributes parses a portrait analysis reply. The profile
// kept on the session stays the raw text; this only verifies the
// expected structure is present inside it.
func DecodeProfileAttributes(raw string) (models.ProfileAttributes, error) {
	var attrs models.ProfileAttributes
	if err := decodeRecord(raw, &attrs); err != nil {
		return models.ProfileAttributes{}, err
	}
	if missing := attrs.MissingFields(); len(missing) > 0 {
		return models.ProfileAttributes{}, &SchemaMismatchError{Raw: raw, Missing: missing}
	}
	return attrs, nil
}

// DecodeOutfitOptions parses an outfit generation reply. The option
// count is accepted as returned; the prompt asks for 3 but the model is
// not held to it here.
func DecodeOutfitOptions(raw string) ([]models.Outfit, error) {
	var options models.OutfitOptions
	if err := decodeRecord(raw, &options); err != nil {
		return nil, err
	}
	if missing := options.MissingFields(); len(missing) > 0 {
		return nil, &SchemaMismatchError{Raw: raw, Missing: missing}
	}
	return options.OutfitOptions, nil
}

// DecodeStyleContext parses a location analysis reply.
func DecodeStyleContext(raw string) (models.StyleContext, error) {
	var styleCtx models.StyleContext
	if err := decodeRecord(raw, &styleCtx); err != nil {
		return models.StyleContext{}, err
	}
	if missing := styleCtx.MissingFields(); len(missing) > 0 {
		return models.StyleContext{}, &SchemaMismatchError{Raw: raw, Missing: missing}
	}
	return styleCtx, nil
}
