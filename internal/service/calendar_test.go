package service

import (
	"testing"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func post(id, day string, network models.SocialNetwork, status models.PostStatus) models.SocialPost {
	return models.SocialPost{
		ID:              id,
		Day:             day,
		Network:         network,
		Content:         "contenu " + id,
		SuggestedVisual: models.VisualImage,
		Status:          status,
	}
}

func TestFilterPostsConjunction(t *testing.T) {
	posts := []models.SocialPost{
		post("1", "Lundi", models.NetworkLinkedIn, models.StatusPending),
		post("2", "Lundi", models.NetworkFacebook, models.StatusPending),
		post("3", "Mardi", models.NetworkLinkedIn, models.StatusApproved),
		post("4", "Mardi", models.NetworkInstagram, models.StatusPublished),
	}

	all := FilterPosts(posts, FilterAll, FilterAll)
	require.Equal(t, posts, all)

	linkedin := FilterPosts(posts, "LinkedIn", FilterAll)
	require.Len(t, linkedin, 2)
	require.Equal(t, "1", linkedin[0].ID)
	require.Equal(t, "3", linkedin[1].ID)

	both := FilterPosts(posts, "LinkedIn", "APPROVED")
	require.Len(t, both, 1)
	require.Equal(t, "3", both[0].ID)

	none := FilterPosts(posts, "Facebook", "PUBLISHED")
	require.Empty(t, none)
}

func TestFilterPostsPreservesOrder(t *testing.T) {
	posts := []models.SocialPost{
		post("c", "Lundi", models.NetworkFacebook, models.StatusPending),
		post("a", "Mardi", models.NetworkFacebook, models.StatusPending),
		post("b", "Lundi", models.NetworkFacebook, models.StatusPending),
	}
	got := FilterPosts(posts, "Facebook", "PENDING")
	require.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFilterPostsDoesNotMutateInput(t *testing.T) {
	posts := []models.SocialPost{
		post("1", "Lundi", models.NetworkLinkedIn, models.StatusPending),
	}
	before := posts[0]
	_ = FilterPosts(posts, FilterAll, "APPROVED")
	require.Equal(t, before, posts[0])
}

func TestMatchDay(t *testing.T) {
	require.True(t, MatchDay("Lundi", "Lundi"))
	require.True(t, MatchDay("lundi soir", "Lundi"))
	require.True(t, MatchDay("LUN", "Lundi"))
	require.False(t, MatchDay("Mardi", "Lundi"))
	require.False(t, MatchDay("", "Lundi"))
}

func TestGroupByDay(t *testing.T) {
	posts := []models.SocialPost{
		post("1", "Lundi", models.NetworkLinkedIn, models.StatusPending),
		post("2", "lundi soir", models.NetworkFacebook, models.StatusPending),
		post("3", "Mardi", models.NetworkLinkedIn, models.StatusPending),
	}

	buckets := GroupByDay(posts, []string{"Lundi", "Mercredi"})
	require.Len(t, buckets, 2)
	require.Len(t, buckets["Lundi"], 2)
	require.Equal(t, "1", buckets["Lundi"][0].ID)
	require.Equal(t, "2", buckets["Lundi"][1].ID)
	require.Empty(t, buckets["Mercredi"])
}

func TestGroupByDayAmbiguousMatch(t *testing.T) {
	// A free-text day can land in more than one bucket; the loose match is
	// intentional and callers must expect it.
	posts := []models.SocialPost{
		post("1", "Lundi et Mardi", models.NetworkLinkedIn, models.StatusPending),
	}
	buckets := GroupByDay(posts, []string{"Lundi", "Mardi"})
	require.Len(t, buckets["Lundi"], 1)
	require.Len(t, buckets["Mardi"], 1)
}

func TestVeilleDigest(t *testing.T) {
	items := []models.CompetitiveIntelligence{
		{Institution: "SONIBANK", Trends: []string{"digitalisation", "récoltes"}},
		{Institution: "Wave", Trends: []string{"transferts gratuits"}},
	}
	require.Equal(t,
		"SONIBANK: digitalisation, récoltes. Wave: transferts gratuits",
		VeilleDigest(items))
	require.Equal(t, "", VeilleDigest(nil))
}
