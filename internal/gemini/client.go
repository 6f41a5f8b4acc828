package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/bagritech/studio-api/configs"
	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/transfer"
	genai "google.golang.org/genai"
)

// Client is a thin wrapper around the official genai client, one method per
// gateway operation.
type Client struct {
	cli          *genai.Client
	cfg          config.Config
	httpc        *http.Client
	pollInterval time.Duration
	videoTimeout time.Duration
}

func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		cli:          cli,
		cfg:          cfg,
		httpc:        &http.Client{Timeout: 2 * time.Minute},
		pollInterval: time.Duration(cfg.VideoPollSeconds) * time.Second,
		videoTimeout: time.Duration(cfg.VideoTimeoutMins) * time.Minute,
	}, nil
}

var _ Gateway = (*Client)(nil)

var veilleSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"institution":   {Type: genai.TypeString},
			"category":      {Type: genai.TypeString},
			"trends":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"lastCampaigns": {Type: genai.TypeString},
		},
		Required: []string{"institution", "category", "trends", "lastCampaigns"},
	},
}

var draftSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":             {Type: genai.TypeString, Description: "Le jour de la semaine concerné"},
			"network":         {Type: genai.TypeString},
			"content":         {Type: genai.TypeString},
			"suggestedVisual": {Type: genai.TypeString, Description: "IMAGE, VIDEO, or SPEECH"},
		},
		Required: []string{"day", "network", "content", "suggestedVisual"},
	},
}

func (c *Client) FetchVeille(ctx context.Context) ([]models.CompetitiveIntelligence, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.VeilleModel, genai.Text(veillePrompt),
		&genai.GenerateContentConfig{
			Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			ResponseMIMEType: "application/json",
			ResponseSchema:   veilleSchema,
		},
	)
	if err != nil {
		return nil, err
	}

	var items []models.CompetitiveIntelligence
	raw := firstText(resp)
	if raw == "" {
		return []models.CompetitiveIntelligence{}, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Unparseable model output degrades to an empty veille, not a crash.
		slog.Error("veille: " + ErrInvalidJSON.Error() + ": " + err.Error())
		return []models.CompetitiveIntelligence{}, nil
	}

	sources := groundingSources(resp)
	for i := range items {
		items[i].Sources = sources
	}
	return items, nil
}

func (c *Client) GenerateDrafts(ctx context.Context, networks []models.SocialNetwork, days []string, veilleDigest, brief string) ([]transfer.PostDraft, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.PostModel,
		genai.Text(campaignPrompt(networks, days, veilleDigest, brief)),
		&genai.GenerateContentConfig{
			ThinkingConfig:   &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(16000))},
			ResponseMIMEType: "application/json",
			ResponseSchema:   draftSchema,
		},
	)
	if err != nil {
		return nil, err
	}

	var drafts []transfer.PostDraft
	raw := firstText(resp)
	if raw == "" {
		return []transfer.PostDraft{}, nil
	}
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		slog.Error("campaign: " + ErrInvalidJSON.Error() + ": " + err.Error())
		return []transfer.PostDraft{}, nil
	}
	return drafts, nil
}

func (c *Client) GenerateImage(ctx context.Context, content string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.ImageModel,
		genai.Text(imagePrompt(content)), nil)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return fmt.Sprintf("data:%s;base64,%s",
					part.InlineData.MIMEType,
					base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
			}
		}
	}
	return "", ErrNoMedia
}

func (c *Client) GenerateVideo(ctx context.Context, content string) ([]byte, string, error) {
	op, err := c.cli.Models.GenerateVideos(ctx, c.cfg.VideoModel, videoPrompt, nil,
		&genai.GenerateVideosConfig{
			NumberOfVideos: 1,
			Resolution:     "720p",
			AspectRatio:    "9:16",
		},
	)
	if err != nil {
		return nil, "", err
	}

	deadline := time.Now().Add(c.videoTimeout)
	for !op.Done {
		if time.Now().After(deadline) {
			return nil, "", ErrVideoTimeout
		}
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
		op, err = c.cli.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return nil, "", err
		}
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video == nil {
		return nil, "", ErrNoMedia
	}
	video := op.Response.GeneratedVideos[0].Video
	mime := video.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	if len(video.VideoBytes) > 0 {
		return video.VideoBytes, mime, nil
	}
	if video.URI == "" {
		return nil, "", ErrNoMedia
	}
	return c.downloadVideo(ctx, video.URI, mime)
}

func (c *Client) downloadVideo(ctx context.Context, uri, mime string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+"&key="+c.cfg.GeminiAPIKey, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("video download failed: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mime = ct
	}
	return data, mime, nil
}

func (c *Client) GenerateSpeech(ctx context.Context, content string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.SpeechModel,
		genai.Text(speechPrompt(content)),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: "Kore"},
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
	}
	return "", ErrNoMedia
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}

func groundingSources(resp *genai.GenerateContentResponse) []models.Source {
	var sources []models.Source
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, models.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}
