package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/onboard/app/internal/models"
)

// FileProfileService keeps profiles in a single JSON file, keyed by UID.
// Meant for credential-less local development; writes go to a temp file and
// are renamed into place so a crash never leaves a half-written store.
type FileProfileService struct {
	mu       sync.RWMutex
	filePath string
}

func NewFileProfileService(dataDir string) (*FileProfileService, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &FileProfileService{
		filePath: filepath.Join(dataDir, "profiles.json"),
	}, nil
}

func (s *FileProfileService) Get(_ context.Context, uid string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}

	prof, ok := profiles[uid]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &prof, nil
}

func (s *FileProfileService) Save(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}
	profiles[profile.UserID] = *profile

	tempFile := s.filePath + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(profiles); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, s.filePath)
}

func (s *FileProfileService) load() (map[string]models.Profile, error) {
	profiles := make(map[string]models.Profile)

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return profiles, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
