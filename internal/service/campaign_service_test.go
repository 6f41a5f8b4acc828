package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/transfer"
	"github.com/stretchr/testify/require"
)

func TestGenerateCampaignOnePostPerDayNetworkPair(t *testing.T) {
	board, _ := newTestBoard(t)
	gw := &stubGateway{}
	svc := NewCampaignService(gw, board)

	posts, err := svc.Generate(context.Background(),
		[]string{"Lundi", "Mardi"},
		[]models.SocialNetwork{models.NetworkLinkedIn, models.NetworkFacebook},
		"lancement du crédit récolte")
	require.NoError(t, err)
	require.Len(t, posts, 4)

	seen := map[string]bool{}
	for _, p := range posts {
		require.Equal(t, models.StatusPending, p.Status)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	require.Equal(t, []string{"Lundi", "Mardi"}, gw.gotDays)
	require.Equal(t, "lancement du crédit récolte", gw.gotBrief)

	// The batch landed on the board, newest first.
	require.Len(t, board.Posts(), 4)
}

func TestGenerateCampaignRequiresDays(t *testing.T) {
	board, _ := newTestBoard(t)
	svc := NewCampaignService(&stubGateway{}, board)

	_, err := svc.Generate(context.Background(), nil, nil, "brief")
	require.ErrorIs(t, err, ErrNoDaysSelected)
	require.Empty(t, board.Posts())
}

func TestGenerateCampaignDefaultsToAllNetworks(t *testing.T) {
	board, _ := newTestBoard(t)
	gw := &stubGateway{}
	svc := NewCampaignService(gw, board)

	posts, err := svc.Generate(context.Background(), []string{"Lundi"}, nil, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
}

func TestGenerateCampaignFeedsVeilleDigest(t *testing.T) {
	board, _ := newTestBoard(t)
	require.NoError(t, board.SetVeille(context.Background(), []models.CompetitiveIntelligence{
		{Institution: "Orabank", Trends: []string{"digitalisation"}},
	}))
	gw := &stubGateway{}
	svc := NewCampaignService(gw, board)

	_, err := svc.Generate(context.Background(), []string{"Lundi"}, nil, "")
	require.NoError(t, err)
	require.Equal(t, "Orabank: digitalisation", gw.gotDigest)
}

func TestGenerateCampaignGatewayFailureAddsNothing(t *testing.T) {
	board, _ := newTestBoard(t)
	gw := &stubGateway{draftsErr: errors.New("quota exceeded")}
	svc := NewCampaignService(gw, board)

	_, err := svc.Generate(context.Background(), []string{"Lundi"}, nil, "brief")
	require.Error(t, err)
	require.Empty(t, board.Posts())
}

func TestGenerateCampaignEmptyDraftsYieldEmptyBatch(t *testing.T) {
	board, _ := newTestBoard(t)
	gw := &stubGateway{drafts: []transfer.PostDraft{}}
	svc := NewCampaignService(gw, board)

	posts, err := svc.Generate(context.Background(), []string{"Lundi"}, nil, "brief")
	require.NoError(t, err)
	require.Empty(t, posts)
	require.Empty(t, board.Posts())
}

func TestGenerateCampaignIDsUniqueAcrossInvocations(t *testing.T) {
	board, _ := newTestBoard(t)
	gw := &stubGateway{}
	svc := NewCampaignService(gw, board).(*campaignService)

	// Force distinct timestamps so back-to-back batches cannot collide.
	ts := int64(1700000000000)
	svc.now = func() time.Time {
		ts++
		return time.UnixMilli(ts)
	}

	first, err := svc.Generate(context.Background(), []string{"Lundi"}, nil, "")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), []string{"Lundi"}, nil, "")
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, p := range append(first, second...) {
		require.False(t, ids[p.ID])
		ids[p.ID] = true
	}
}
