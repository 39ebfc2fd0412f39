package storage

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"stylistapi/models"

	"github.com/getsentry/sentry-go"
)

const (
	wardrobeFile = "wardrobe.gob"
	profileFile  = "profile.json"
	outfitsFile  = "saved_outfits.json"
)

// Store persists the three record kinds as whole-file snapshots under
// DataDir and keeps uploaded item images under UploadsDir. Every save
// rewrites the complete collection; there is no partial update and no
// locking against concurrent writers, so a single active process per
// data directory is assumed.
type Store struct {
	DataDir    string
	UploadsDir string
}

func NewStore(dataDir, uploadsDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
	}
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", uploadsDir, err)
	}
	return &Store{DataDir: dataDir, UploadsDir: uploadsDir}, nil
}

type profileRecord struct {
	Profile *string `json:"profile"`
}

type outfitsRecord struct {
	Outfits []models.Outfit `json:"outfits"`
}

// LoadWardrobe reads the wardrobe snapshot. A missing or corrupt file
// yields the default wardrobe with all five categories empty; corruption
// is logged, never propagated past this boundary.
func (s *Store) LoadWardrobe() models.Wardrobe {
	path := filepath.Join(s.DataDir, wardrobeFile)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("[Store] Error opening wardrobe file %s: %v\n", path, err)
			sentry.CaptureException(fmt.Errorf("error opening wardrobe file %s: %w", path, err))
		}
		return models.NewWardrobe()
	}
	defer f.Close()

	var wardrobe models.Wardrobe
	if err := gob.NewDecoder(f).Decode(&wardrobe); err != nil {
		fmt.Printf("[Store] Error decoding wardrobe file %s: %v\n", path, err)
		sentry.CaptureException(fmt.Errorf("error decoding wardrobe file %s: %w", path, err))
		return models.NewWardrobe()
	}
	return wardrobe.Normalize()
}

// SaveWardrobe rewrites the whole wardrobe snapshot.
func (s *Store) SaveWardrobe(wardrobe models.Wardrobe) error {
	path := filepath.Join(s.DataDir, wardrobeFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write wardrobe file %s: %w", path, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(wardrobe); err != nil {
		return fmt.Errorf("failed to encode wardrobe: %w", err)
	}
	return nil
}

// LoadProfile returns the persisted profile text, or nil when no
// profile was saved or the file is unreadable.
func (s *Store) LoadProfile() *string {
	path := filepath.Join(s.DataDir, profileFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("[Store] Error reading profile file %s: %v\n", path, err)
			sentry.CaptureException(fmt.Errorf("error reading profile file %s: %w", path, err))
		}
		return nil
	}
	var record profileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		fmt.Printf("[Store] Error parsing profile file %s: %v\n", path, err)
		sentry.CaptureException(fmt.Errorf("error parsing profile file %s: %w", path, err))
		return nil
	}
	return record.Profile
}

func (s *Store) SaveProfile(profile string) error {
	path := filepath.Join(s.DataDir, profileFile)
	data, err := json.Marshal(profileRecord{Profile: &profile})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}

// LoadOutfits returns the persisted outfit history, empty when nothing
// was saved or the file is unreadable.
func (s *Store) LoadOutfits() []models.Outfit {
	path := filepath.Join(s.DataDir, outfitsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("[Store] Error reading outfits file %s: %v\n", path, err)
			sentry.CaptureException(fmt.Errorf("error reading outfits file %s: %w", path, err))
		}
		return []models.Outfit{}
	}
	var record outfitsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		fmt.Printf("[Store] Error parsing outfits file %s: %v\n", path, err)
		sentry.CaptureException(fmt.Errorf("error parsing outfits file %s: %w", path, err))
		return []models.Outfit{}
	}
	if record.Outfits == nil {
		return []models.Outfit{}
	}
	return record.Outfits
}

func (s *Store) SaveOutfits(outfits []models.Outfit) error {
	path := filepath.Join(s.DataDir, outfitsFile)
	data, err := json.Marshal(outfitsRecord{Outfits: outfits})
	if err != nil {
		return fmt.Errorf("failed to encode outfits: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write outfits file %s: %w", path, err)
	}
	return nil
}

// SaveItemImage writes the uploaded image under the item id and returns
// the path recorded on the wardrobe item.
func (s *Store) SaveItemImage(id string, data []byte) (string, error) {
	path := filepath.Join(s.UploadsDir, id+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write item image %s: %w", path, err)
	}
	return path, nil
}

// PurgeMissing returns a new wardrobe with every item whose image file
// is no longer on disk removed from its category. Idempotent; items
// whose image exists are always kept. Profile and outfit history are
// untouched.
func (s *Store) PurgeMissing(wardrobe models.Wardrobe) models.Wardrobe {
	cleaned := models.NewWardrobe()
	for _, category := range models.WardrobeCategories {
		for _, item := range wardrobe[category] {
			if _, err := os.Stat(item.ImagePath); err != nil {
				fmt.Printf("[Store] Purging item %s: image %s is gone\n", item.ID, item.ImagePath)
				continue
			}
			cleaned.Add(category, item)
		}
	}
	return cleaned
}
