package gemini

import (
	"context"
	"errors"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/transfer"
)

var (
	ErrInvalidJSON  = errors.New("gemini: invalid JSON from model")
	ErrNoMedia      = errors.New("gemini: no media in response")
	ErrVideoTimeout = errors.New("gemini: video job timed out")
)

// Gateway is the generative backend behind veille analysis, campaign drafting
// and visual production. Services depend on this interface so they can be
// exercised with stubs.
type Gateway interface {
	// FetchVeille runs the competitive analysis with search grounding and
	// returns the structured entries plus their web citations.
	FetchVeille(ctx context.Context) ([]models.CompetitiveIntelligence, error)

	// GenerateDrafts asks for one post per (day, network) pair with distinct
	// angles. Malformed model output degrades to an empty slice.
	GenerateDrafts(ctx context.Context, networks []models.SocialNetwork, days []string, veilleDigest, brief string) ([]transfer.PostDraft, error)

	// GenerateImage returns a displayable data URI for the generated image.
	GenerateImage(ctx context.Context, content string) (string, error)

	// GenerateVideo runs the long-running video job, polling until done or
	// the configured deadline passes (ErrVideoTimeout). Returns the video
	// bytes and their MIME type.
	GenerateVideo(ctx context.Context, content string) ([]byte, string, error)

	// GenerateSpeech returns base64-encoded raw PCM (16-bit LE, 24kHz mono).
	GenerateSpeech(ctx context.Context, content string) (string, error)
}
