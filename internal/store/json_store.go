package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/bagritech/studio-api/internal/models"
)

// JSONStore keeps both snapshot slots in a single JSON file under the data
// directory. Writes go through a temp file and rename so a crash mid-save
// never leaves a truncated snapshot.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	data     snapshotData
}

type snapshotData struct {
	Posts  []models.SocialPost              `json:"posts"`
	Veille []models.CompetitiveIntelligence `json:"veille"`
}

func NewJSONStore(dataDir string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	s := &JSONStore{filePath: filepath.Join(dataDir, "snapshots.json")}
	if err := s.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

var _ SnapshotStore = (*JSONStore)(nil)

func (s *JSONStore) loadFromFile() error {
	file, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(file, &s.data)
}

func (s *JSONStore) saveToFile() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

func (s *JSONStore) LoadPosts(ctx context.Context) ([]models.SocialPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Posts == nil {
		return nil, nil
	}
	posts := make([]models.SocialPost, len(s.data.Posts))
	copy(posts, s.data.Posts)
	return posts, nil
}

func (s *JSONStore) SavePosts(ctx context.Context, posts []models.SocialPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Posts = make([]models.SocialPost, len(posts))
	copy(s.data.Posts, posts)
	return s.saveToFile()
}

func (s *JSONStore) LoadVeille(ctx context.Context) ([]models.CompetitiveIntelligence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Veille == nil {
		return nil, nil
	}
	items := make([]models.CompetitiveIntelligence, len(s.data.Veille))
	copy(items, s.data.Veille)
	return items, nil
}

func (s *JSONStore) SaveVeille(ctx context.Context, items []models.CompetitiveIntelligence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Veille = make([]models.CompetitiveIntelligence, len(items))
	copy(s.data.Veille, items)
	return s.saveToFile()
}
