package service

import (
	"context"
	"fmt"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/transfer"
)

// stubGateway is a scriptable gemini.Gateway for service tests.
type stubGateway struct {
	veille    []models.CompetitiveIntelligence
	veilleErr error

	drafts    []transfer.PostDraft
	draftsErr error
	gotDigest string
	gotBrief  string
	gotDays   []string

	imageURL  string
	imageErr  error
	videoData []byte
	videoMime string
	videoErr  error
	speechB64 string
	speechErr error

	imageCalls  int
	videoCalls  int
	speechCalls int

	block chan struct{} // when set, media calls wait until closed
}

func (g *stubGateway) FetchVeille(ctx context.Context) ([]models.CompetitiveIntelligence, error) {
	return g.veille, g.veilleErr
}

func (g *stubGateway) GenerateDrafts(ctx context.Context, networks []models.SocialNetwork, days []string, digest, brief string) ([]transfer.PostDraft, error) {
	g.gotDigest = digest
	g.gotBrief = brief
	g.gotDays = days
	if g.draftsErr != nil {
		return nil, g.draftsErr
	}
	if g.drafts != nil {
		return g.drafts, nil
	}
	// Default: one draft per (day, network) pair.
	var drafts []transfer.PostDraft
	for _, d := range days {
		for _, n := range networks {
			drafts = append(drafts, transfer.PostDraft{
				Day:             d,
				Network:         string(n),
				Content:         fmt.Sprintf("post %s/%s", d, n),
				SuggestedVisual: "IMAGE",
			})
		}
	}
	return drafts, nil
}

func (g *stubGateway) wait() {
	if g.block != nil {
		<-g.block
	}
}

func (g *stubGateway) GenerateImage(ctx context.Context, content string) (string, error) {
	g.imageCalls++
	g.wait()
	return g.imageURL, g.imageErr
}

func (g *stubGateway) GenerateVideo(ctx context.Context, content string) ([]byte, string, error) {
	g.videoCalls++
	g.wait()
	return g.videoData, g.videoMime, g.videoErr
}

func (g *stubGateway) GenerateSpeech(ctx context.Context, content string) (string, error) {
	g.speechCalls++
	g.wait()
	return g.speechB64, g.speechErr
}

// stubMedia stores nothing and returns a fixed URL.
type stubMedia struct {
	url string
	err error
	got []byte
}

func (m *stubMedia) Save(ctx context.Context, data []byte, mimeHint string) (string, error) {
	m.got = data
	return m.url, m.err
}
