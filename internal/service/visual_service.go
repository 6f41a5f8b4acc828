package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bagritech/studio-api/internal/gemini"
	"github.com/bagritech/studio-api/internal/models"
)

var (
	// ErrVisualGeneration is the single user-visible failure for any visual
	// generation error; specifics go to the log only.
	ErrVisualGeneration = errors.New("erreur lors de la génération du visuel")
	ErrPostNotFound     = errors.New("post introuvable")
	ErrAlreadyRunning   = errors.New("une génération est déjà en cours pour ce post")
)

// VisualService produces one visual per request for a single post. Each post
// has its own in-flight flag, so a slow video for one post never blocks image
// generation for another.
type VisualService interface {
	Generate(ctx context.Context, postID string, visualType models.VisualType) (models.SocialPost, error)
	InFlight(postID string) bool
}

type visualService struct {
	gw    gemini.Gateway
	board BoardService
	media MediaService

	mu       sync.Mutex
	inflight map[string]bool
}

func NewVisualService(gw gemini.Gateway, board BoardService, media MediaService) VisualService {
	return &visualService{
		gw:       gw,
		board:    board,
		media:    media,
		inflight: make(map[string]bool),
	}
}

func (s *visualService) InFlight(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[postID]
}

func (s *visualService) begin(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[postID] {
		return false
	}
	s.inflight[postID] = true
	return true
}

func (s *visualService) end(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, postID)
}

func (s *visualService) Generate(ctx context.Context, postID string, visualType models.VisualType) (models.SocialPost, error) {
	post, ok := s.board.Post(postID)
	if !ok {
		return models.SocialPost{}, ErrPostNotFound
	}
	if !s.begin(postID) {
		return models.SocialPost{}, ErrAlreadyRunning
	}
	defer s.end(postID)

	url, err := s.produce(ctx, post.Content, visualType)
	if err != nil {
		slog.Error(fmt.Sprintf("visual %s for post %s: %v", visualType, postID, err))
		return models.SocialPost{}, ErrVisualGeneration
	}

	// Last write wins: a second generation replaces any earlier visual.
	post.VisualURL = url
	post.SuggestedVisual = visualType
	post.IsGeneratingVisual = false
	if err := s.board.UpdatePost(ctx, post); err != nil {
		return models.SocialPost{}, err
	}
	return post, nil
}

// produce is the closed three-way dispatch over visual kinds. Adding a kind
// means adding a case here, in playback and in the request validation.
func (s *visualService) produce(ctx context.Context, content string, visualType models.VisualType) (string, error) {
	switch visualType {
	case models.VisualImage:
		return s.gw.GenerateImage(ctx, content)
	case models.VisualVideo:
		data, mime, err := s.gw.GenerateVideo(ctx, content)
		if err != nil {
			return "", err
		}
		return s.media.Save(ctx, data, mime)
	case models.VisualSpeech:
		return s.gw.GenerateSpeech(ctx, content)
	default:
		return "", fmt.Errorf("unknown visual type %q", visualType)
	}
}
