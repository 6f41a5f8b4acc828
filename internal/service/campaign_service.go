package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bagritech/studio-api/internal/gemini"
	"github.com/bagritech/studio-api/internal/models"
)

var ErrNoDaysSelected = errors.New("aucun jour de publication sélectionné")

type CampaignService interface {
	// Generate runs the bulk brief-to-calendar generation and prepends the
	// resulting posts to the board. All-or-nothing: a gateway failure yields
	// no partial batch.
	Generate(ctx context.Context, days []string, networks []models.SocialNetwork, brief string) ([]models.SocialPost, error)
}

type campaignService struct {
	gw    gemini.Gateway
	board BoardService
	now   func() time.Time
}

func NewCampaignService(gw gemini.Gateway, board BoardService) CampaignService {
	return &campaignService{gw: gw, board: board, now: time.Now}
}

func (s *campaignService) Generate(ctx context.Context, days []string, networks []models.SocialNetwork, brief string) ([]models.SocialPost, error) {
	if len(days) == 0 {
		return nil, ErrNoDaysSelected
	}
	if len(networks) == 0 {
		networks = models.AllNetworks()
	}

	digest := VeilleDigest(s.board.Veille())
	drafts, err := s.gw.GenerateDrafts(ctx, networks, days, digest, brief)
	if err != nil {
		slog.Error("campaign generation failed: " + err.Error())
		return nil, err
	}

	// Ids combine the request timestamp with the draft index, unique within a
	// batch and across repeated invocations.
	batch := s.now().UnixMilli()
	posts := make([]models.SocialPost, len(drafts))
	for i, d := range drafts {
		posts[i] = models.SocialPost{
			ID:              fmt.Sprintf("%d-%d", batch, i),
			Day:             d.Day,
			Network:         models.SocialNetwork(d.Network),
			Content:         d.Content,
			SuggestedVisual: models.VisualType(d.SuggestedVisual),
			Status:          models.StatusPending,
		}
	}

	if len(posts) > 0 {
		if err := s.board.AddPosts(ctx, posts); err != nil {
			return nil, err
		}
	}
	return posts, nil
}
