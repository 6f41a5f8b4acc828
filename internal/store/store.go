package store

import (
	"context"

	"github.com/bagritech/studio-api/internal/models"
)

// Slot names for the two shared snapshots.
const (
	SlotPosts  = "bagri_shared_posts"
	SlotVeille = "bagri_shared_veille"
)

// SnapshotStore mirrors the in-memory collections across restarts. Each save
// overwrites the whole slot; loads return nil when a slot was never written.
type SnapshotStore interface {
	LoadPosts(ctx context.Context) ([]models.SocialPost, error)
	SavePosts(ctx context.Context, posts []models.SocialPost) error
	LoadVeille(ctx context.Context) ([]models.CompetitiveIntelligence, error)
	SaveVeille(ctx context.Context, items []models.CompetitiveIntelligence) error
}
