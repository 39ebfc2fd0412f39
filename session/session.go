package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/storage"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// Session is the single in-process state of one user's styling session:
// wardrobe, profile, the last generated outfit batch, outfit history and
// the optional style context. It is created at startup from the record
// store and torn down with the process; there are no hidden globals.
//
// Every operation runs synchronously start to finish under the mutex,
// so at most one model call is in flight and the session is back to
// idle as soon as the call returns, whatever the outcome. A failed
// operation leaves prior state exactly as it was; only a persistence
// failure after a successful mutation keeps the mutated in-memory state
// (the next mutation retries the same write).
type Session struct {
	mu      sync.Mutex
	store   *storage.Store
	stylist services.LLMStylist
	model   services.LLMModelName

	apiKey      string
	wardrobe    models.Wardrobe
	profile     *string
	styleCtx    models.StyleContext
	lastOutfits []models.Outfit
	history     []models.Outfit
}

// New loads all three collections into memory. The credential comes
// from the GEMINI_API_KEY environment variable; a runtime-entered key
// set through ConfigureKey replaces it for the rest of the session.
func New(store *storage.Store, stylist services.LLMStylist, apiKey string) *Session {
	return &Session{
		store:       store,
		stylist:     stylist,
		model:       services.Flash25,
		apiKey:      apiKey,
		wardrobe:    store.LoadWardrobe(),
		profile:     store.LoadProfile(),
		lastOutfits: []models.Outfit{},
		history:     store.LoadOutfits(),
	}
}

func (s *Session) ConfigureKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

func (s *Session) HasCredential() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey != ""
}

// credential guards every model-calling operation: without a key the
// transition is refused before any transport is attempted.
func (s *Session) credential() (string, error) {
	if s.apiKey == "" {
		return "", &Error{Kind: KindCredentialMissing}
	}
	return s.apiKey, nil
}

func (s *Session) Profile() *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile replaces the profile text wholesale, as manual edits do.
func (s *Session) UpdateProfile(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &text
	if err := s.store.SaveProfile(text); err != nil {
		sentry.CaptureException(err)
		return &Error{Kind: KindPersistenceFailure, Err: err}
	}
	return nil
}

// AnalyzePortrait sends the user photo to the model and replaces the
// active profile with the returned analysis text. The raw text is kept
// as the profile; the parse only verifies the expected attribute shape
// is present inside it.
func (s *Session) AnalyzePortrait(ctx context.Context, image services.ImageUpload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, err := s.credential()
	if err != nil {
		return "", err
	}
	resp, err := s.stylist.AnalyzePortrait(ctx, key, image, s.model)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("portrait analysis failed: %w", err))
		return "", &Error{Kind: KindTransportFailure, Err: err}
	}
	if _, err := services.DecodeProfileAttributes(resp.Response); err != nil {
		sentry.CaptureException(err)
		return "", extractionError(err)
	}
	s.profile = &resp.Response
	if err := s.store.SaveProfile(resp.Response); err != nil {
		sentry.CaptureException(err)
		return resp.Response, &Error{Kind: KindPersistenceFailure, Err: err}
	}
	return resp.Response, nil
}

// AnalyzeGarment stores the uploaded image under a fresh item id,
// analyzes it and appends the resulting item to the category bucket.
// The image is written before the model call, as the upload flow does;
// a failed analysis leaves the wardrobe untouched.
func (s *Session) AnalyzeGarment(ctx context.Context, category string, image services.ImageUpload) (models.WardrobeItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, err := s.credential()
	if err != nil {
		return models.WardrobeItem{}, err
	}

	id := uuid.NewString()[:8]
	imagePath, err := s.store.SaveItemImage(id, image.Data)
	if err != nil {
		sentry.CaptureException(err)
		return models.WardrobeItem{}, &Error{Kind: KindPersistenceFailure, Err: err}
	}

	resp, err := s.stylist.AnalyzeGarment(ctx, key, image, s.model)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("garment analysis failed: %w", err))
		return models.WardrobeItem{}, &Error{Kind: KindTransportFailure, Err: err}
	}
	item, err := services.DecodeGarment(resp.Response)
	if err != nil {
		sentry.CaptureException(err)
		return models.WardrobeItem{}, extractionError(err)
	}

	item.ID = id
	item.ImagePath = imagePath
	s.wardrobe.Add(category, item)
	if err := s.store.SaveWardrobe(s.wardrobe); err != nil {
		sentry.CaptureException(err)
		return item, &Error{Kind: KindPersistenceFailure, Err: err}
	}
	return item, nil
}

func (s *Session) Wardrobe() models.Wardrobe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wardrobe
}

func (s *Session) RemoveItem(category string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.wardrobe.Remove(category, id) {
		return ErrItemNotFound
	}
	if err := s.store.SaveWardrobe(s.wardrobe); err != nil {
		sentry.CaptureException(err)
		return &Error{Kind: KindPersistenceFailure, Err: err}
	}
	return nil
}

// PurgeMissing drops wardrobe items whose image file is gone and
// persists the cleaned wardrobe.
func (s *Session) PurgeMissing() (models.Wardrobe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wardrobe = s.store.PurgeMissing(s.wardrobe)
	if err := s.store.SaveWardrobe(s.wardrobe); err != nil {
		sentry.CaptureException(err)
		return s.wardrobe, &Error{Kind: KindPersistenceFailure, Err: err}
	}
	return s.wardrobe, nil
}

// AnalyzeLocation derives a style context from a photo of a place. The
// context conditions subsequent generations and lives on the session
// only.
func (s *Session) AnalyzeLocation(ctx context.Context, image services.ImageUpload) (models.StyleContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, err := s.credential()
	if err != nil {
		return models.StyleContext{}, err
	}
	resp, err := s.stylist.AnalyzeLocation(ctx, key, image, s.model)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("location analysis failed: %w", err))
		return models.StyleContext{}, &Error{Kind: KindTransportFailure, Err: err}
	}
	styleCtx, err := services.DecodeStyleContext(resp.Response)
	if err != nil {
		sentry.CaptureException(err)
		return models.StyleContext{}, extractionError(err)
	}
	s.styleCtx = styleCtx
	return styleCtx, nil
}

// MergeContext overrides the session context with the non-empty fields
// of the given one.
func (s *Session) MergeContext(styleCtx models.StyleContext) models.StyleContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	if styleCtx.Location != "" {
		s.styleCtx.Location = styleCtx.Location
	}
	if styleCtx.Weather != "" {
		s.styleCtx.Weather = styleCtx.Weather
	}
	if styleCtx.TimeOfDay != "" {
		s.styleCtx.TimeOfDay = styleCtx.TimeOfDay
	}
	if styleCtx.DressCode != "" {
		s.styleCtx.DressCode = styleCtx.DressCode
	}
	if styleCtx.Notes != "" {
		s.styleCtx.Notes = styleCtx.Notes
	}
	return s.styleCtx
}

func (s *Session) Context() models.StyleContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.styleCtx
}

// GenerateOutfits prompts the model with the profile, the wardrobe as
// JSON and the current context, and replaces the last generated batch
// with whatever options come back. The prompt asks for 3 but the count
// returned is accepted as is. The batch is not persisted; only saved
// favorites are.
func (s *Session) GenerateOutfits(ctx context.Context) ([]models.Outfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil || *s.profile == "" {
		return nil, ErrNoProfile
	}
	if s.wardrobe.IsEmpty() {
		return nil, ErrEmptyWardrobe
	}
	key, err := s.credential()
	if err != nil {
		return nil, err
	}

	wardrobeJSON, err := json.Marshal(s.wardrobe)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize wardrobe: %w", err)
	}
	prompt := services.BuildOutfitPrompt(*s.profile, string(wardrobeJSON), s.styleCtx)

	resp, err := s.stylist.GenerateOutfits(ctx, key, prompt, s.model)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("outfit generation failed: %w", err))
		return nil, &Error{Kind: KindTransportFailure, Err: err}
	}
	outfits, err := services.DecodeOutfitOptions(resp.Response)
	if err != nil {
		sentry.CaptureException(err)
		return nil, extractionError(err)
	}
	s.lastOutfits = outfits
	return outfits, nil
}

func (s *Session) LastOutfits() []models.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutfits
}

// SaveFavorite appends the outfit with the given option id from the
// last generated batch to the history. Option ids collide across
// batches, so the history never dedups by them; saving option 2 from
// two different batches stores two entries.
func (s *Session) SaveFavorite(optionID int) (models.Outfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, outfit := range s.lastOutfits {
		if outfit.OptionID == optionID {
			s.history = append(s.history, outfit)
			if err := s.store.SaveOutfits(s.history); err != nil {
				sentry.CaptureException(err)
				return outfit, &Error{Kind: KindPersistenceFailure, Err: err}
			}
			return outfit, nil
		}
	}
	return models.Outfit{}, ErrUnknownOption
}

func (s *Session) History() []models.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}
