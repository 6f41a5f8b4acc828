package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/store"
	"github.com/bagritech/studio-api/internal/transfer"
)

// BoardService owns the shared session state: the post collection, the veille
// and the selected publication days. All mutation goes through these methods;
// every successful mutation is snapshotted to the persistence adapter.
type BoardService interface {
	Load(ctx context.Context) error

	Posts() []models.SocialPost
	Post(id string) (models.SocialPost, bool)
	AddPosts(ctx context.Context, newPosts []models.SocialPost) error
	UpdatePost(ctx context.Context, updated models.SocialPost) error
	SetStatus(ctx context.Context, id string, status models.PostStatus) error
	ClearAll(ctx context.Context) error

	Filter(network, status string) []models.SocialPost
	Board(days []string, network, status string) map[string][]models.SocialPost

	SelectedDays() []string
	ToggleDay(day string) []string

	Veille() []models.CompetitiveIntelligence
	SetVeille(ctx context.Context, items []models.CompetitiveIntelligence) error

	Summary() transfer.DashboardSummary
}

type boardService struct {
	st store.SnapshotStore

	mu           sync.RWMutex
	posts        []models.SocialPost
	veille       []models.CompetitiveIntelligence
	selectedDays []string
}

func NewBoardService(st store.SnapshotStore) BoardService {
	return &boardService{
		st:           st,
		selectedDays: []string{"Lundi", "Mercredi", "Vendredi"},
	}
}

func (s *boardService) Load(ctx context.Context) error {
	posts, err := s.st.LoadPosts(ctx)
	if err != nil {
		return err
	}
	veille, err := s.st.LoadVeille(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	s.veille = veille
	return nil
}

func (s *boardService) Posts() []models.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.SocialPost, len(s.posts))
	copy(posts, s.posts)
	return posts
}

func (s *boardService) Post(id string) (models.SocialPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.SocialPost{}, false
}

// AddPosts prepends the new batch so the most recent campaign shows first.
func (s *boardService) AddPosts(ctx context.Context, newPosts []models.SocialPost) error {
	s.mu.Lock()
	s.posts = append(append([]models.SocialPost{}, newPosts...), s.posts...)
	s.mu.Unlock()
	return s.snapshotPosts(ctx)
}

// UpdatePost replaces the element whose id matches. An unknown id is logged
// and dropped rather than treated as an insert.
func (s *boardService) UpdatePost(ctx context.Context, updated models.SocialPost) error {
	s.mu.Lock()
	found := false
	for i, p := range s.posts {
		if p.ID == updated.ID {
			s.posts[i] = updated
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		slog.Warn("update ignored: no post with id " + updated.ID)
		return nil
	}
	return s.snapshotPosts(ctx)
}

// SetStatus is deliberately unguarded: any status may be set from any other.
// Approval order is advisory, not enforced.
func (s *boardService) SetStatus(ctx context.Context, id string, status models.PostStatus) error {
	post, ok := s.Post(id)
	if !ok {
		slog.Warn("status update ignored: no post with id " + id)
		return nil
	}
	post.Status = status
	return s.UpdatePost(ctx, post)
}

func (s *boardService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	s.posts = nil
	s.mu.Unlock()
	return s.snapshotPosts(ctx)
}

func (s *boardService) Filter(network, status string) []models.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterPosts(s.posts, network, status)
}

func (s *boardService) Board(days []string, network, status string) map[string][]models.SocialPost {
	return GroupByDay(s.Filter(network, status), days)
}

func (s *boardService) SelectedDays() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	days := make([]string, len(s.selectedDays))
	copy(days, s.selectedDays)
	return days
}

func (s *boardService) ToggleDay(day string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.selectedDays {
		if d == day {
			s.selectedDays = append(s.selectedDays[:i], s.selectedDays[i+1:]...)
			return append([]string{}, s.selectedDays...)
		}
	}
	s.selectedDays = append(s.selectedDays, day)
	return append([]string{}, s.selectedDays...)
}

func (s *boardService) Veille() []models.CompetitiveIntelligence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CompetitiveIntelligence, len(s.veille))
	copy(items, s.veille)
	return items
}

// SetVeille replaces the veille wholesale; entries are never edited one by one.
func (s *boardService) SetVeille(ctx context.Context, items []models.CompetitiveIntelligence) error {
	s.mu.Lock()
	s.veille = items
	s.mu.Unlock()

	if err := s.st.SaveVeille(ctx, items); err != nil {
		slog.Error("veille snapshot failed: " + err.Error())
		return err
	}
	return nil
}

func (s *boardService) Summary() transfer.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := 0
	for _, p := range s.posts {
		if p.Status == models.StatusPending {
			pending++
		}
	}
	return transfer.DashboardSummary{
		PendingPosts: pending,
		VeilleCount:  len(s.veille),
		SelectedDays: len(s.selectedDays),
		TotalPosts:   len(s.posts),
	}
}

func (s *boardService) snapshotPosts(ctx context.Context) error {
	if err := s.st.SavePosts(ctx, s.Posts()); err != nil {
		slog.Error("posts snapshot failed: " + err.Error())
		return err
	}
	return nil
}
