// Package storage keeps uploaded circuit list files in memory. Submitted
// data is never written to disk: uploads only live long enough for the
// operator to compose and copy out a notice.
package storage

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maintgen/backend/internal/models"
)

// Store defines the interface for uploaded-file storage.
type Store interface {
	Save(name string, r io.Reader) (*models.FileInfo, error)
	SaveBytes(name string, data []byte) (*models.FileInfo, error)
	Get(id string) (*models.FileInfo, error)
	GetContent(id string) ([]byte, error)
	List(limit int) ([]*models.FileInfo, error)
	Delete(id string) error
}

// MemoryStore implements Store with an in-process map.
type MemoryStore struct {
	mu      sync.RWMutex
	files   map[string]*models.FileInfo
	content map[string][]byte
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files:   make(map[string]*models.FileInfo),
		content: make(map[string][]byte),
	}
}

// Save reads the full content and stores it under a fresh ID.
func (s *MemoryStore) Save(name string, r io.Reader) (*models.FileInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	return s.SaveBytes(name, data)
}

// SaveBytes stores already-read content under a fresh ID.
func (s *MemoryStore) SaveBytes(name string, data []byte) (*models.FileInfo, error) {
	info := &models.FileInfo{
		ID:         uuid.New().String(),
		Name:       name,
		Size:       int64(len(data)),
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[info.ID] = info
	s.content[info.ID] = data

	return info, nil
}

// Get retrieves file metadata by ID.
func (s *MemoryStore) Get(id string) (*models.FileInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", id)
	}

	return info, nil
}

// GetContent returns the raw bytes of an uploaded file.
func (s *MemoryStore) GetContent(id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.content[id]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", id)
	}

	return data, nil
}

// List returns the most recent files.
func (s *MemoryStore) List(limit int) ([]*models.FileInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []*models.FileInfo
	for _, info := range s.files {
		list = append(list, info)
	}

	// Sort by UploadedAt desc
	sort.Slice(list, func(i, j int) bool {
		return list[i].UploadedAt.After(list[j].UploadedAt)
	})

	if len(list) > limit {
		list = list[:limit]
	}

	return list, nil
}

// Delete removes a file from storage.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return fmt.Errorf("file not found: %s", id)
	}

	delete(s.files, id)
	delete(s.content, id)

	return nil
}
