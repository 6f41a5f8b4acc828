package service

import (
	"context"
	"log/slog"

	"github.com/bagritech/studio-api/internal/gemini"
	"github.com/bagritech/studio-api/internal/models"
)

type VeilleService interface {
	List() []models.CompetitiveIntelligence
	Refresh(ctx context.Context) ([]models.CompetitiveIntelligence, error)
	// EnsureLoaded fetches the veille once when the persisted slot is empty,
	// so a fresh install starts with data.
	EnsureLoaded(ctx context.Context) error
}

type veilleService struct {
	gw    gemini.Gateway
	board BoardService
}

func NewVeilleService(gw gemini.Gateway, board BoardService) VeilleService {
	return &veilleService{gw: gw, board: board}
}

func (s *veilleService) List() []models.CompetitiveIntelligence {
	return s.board.Veille()
}

func (s *veilleService) Refresh(ctx context.Context) ([]models.CompetitiveIntelligence, error) {
	items, err := s.gw.FetchVeille(ctx)
	if err != nil {
		slog.Error("veille fetch failed: " + err.Error())
		return nil, err
	}
	if err := s.board.SetVeille(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *veilleService) EnsureLoaded(ctx context.Context) error {
	if len(s.board.Veille()) > 0 {
		return nil
	}
	_, err := s.Refresh(ctx)
	return err
}
