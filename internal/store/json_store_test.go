package store

import (
	"context"
	"testing"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	posts := []models.SocialPost{
		{
			ID:              "1700000000000-0",
			Day:             "Lundi",
			Network:         models.NetworkLinkedIn,
			Content:         "Le crédit récolte arrive.",
			SuggestedVisual: models.VisualImage,
			Status:          models.StatusApproved,
			VisualURL:       "data:image/png;base64,aaaa",
		},
		{
			ID:              "1700000000000-1",
			Day:             "mardi soir",
			Network:         models.NetworkInstagram,
			Content:         "Inclusion financière au quotidien.",
			SuggestedVisual: models.VisualSpeech,
			Status:          models.StatusPending,
		},
	}
	require.NoError(t, s.SavePosts(ctx, posts))

	veille := []models.CompetitiveIntelligence{
		{
			Institution:   "Ecobank",
			Category:      "Bank",
			Trends:        []string{"digitalisation", "diaspora"},
			LastCampaigns: "Campagne transferts été 2026",
			Sources:       []models.Source{{Title: "communiqué", URI: "https://example.com/a"}},
		},
	}
	require.NoError(t, s.SaveVeille(ctx, veille))

	// A second store over the same directory sees identical collections, in
	// the same order.
	s2, err := NewJSONStore(dir)
	require.NoError(t, err)

	gotPosts, err := s2.LoadPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, posts, gotPosts)

	gotVeille, err := s2.LoadVeille(ctx)
	require.NoError(t, err)
	require.Equal(t, veille, gotVeille)
}

func TestJSONStoreEmptyOnFirstRun(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	posts, err := s.LoadPosts(context.Background())
	require.NoError(t, err)
	require.Nil(t, posts)

	veille, err := s.LoadVeille(context.Background())
	require.NoError(t, err)
	require.Nil(t, veille)
}

func TestJSONStoreSaveEmptyClearsSlot(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SavePosts(ctx, []models.SocialPost{{ID: "p1"}}))
	require.NoError(t, s.SavePosts(ctx, nil))

	s2, err := NewJSONStore(dir)
	require.NoError(t, err)
	posts, err := s2.LoadPosts(ctx)
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestJSONStoreReturnsCopies(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.SavePosts(ctx, []models.SocialPost{{ID: "p1", Content: "original"}}))

	got, err := s.LoadPosts(ctx)
	require.NoError(t, err)
	got[0].Content = "mutated"

	again, err := s.LoadPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, "original", again[0].Content)
}
