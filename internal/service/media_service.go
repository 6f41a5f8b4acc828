package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/bagritech/studio-api/configs"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MediaService stores generated media bytes and hands back a URL the board
// can render. Uploads go to R2 when configured, otherwise to the local data
// directory served under /media.
type MediaService interface {
	Save(ctx context.Context, data []byte, mimeHint string) (string, error)
}

type mediaService struct {
	config cfg.Config
}

func NewMediaService(config cfg.Config) MediaService {
	return &mediaService{config: config}
}

func (m *mediaService) Save(ctx context.Context, data []byte, mimeHint string) (string, error) {
	mime, ext := sniffType(data, mimeHint)

	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := id + ext

	if m.config.R2.BucketName != "" {
		if err := m.uploadToR2(ctx, key, data, mime); err != nil {
			return "", err
		}
		return strings.TrimRight(m.config.R2.PublicURL, "/") + "/" + key, nil
	}

	dir := filepath.Join(m.config.DataDir, "media")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, key), data, 0644); err != nil {
		return "", err
	}
	return "/media/" + key, nil
}

func sniffType(data []byte, mimeHint string) (mime, ext string) {
	kind, err := filetype.Match(data)
	if err == nil && kind != types.Unknown {
		return kind.MIME.Value, "." + kind.Extension
	}
	if mimeHint == "" {
		return "application/octet-stream", ""
	}
	// Derive a usable extension from the mime subtype.
	if i := strings.Index(mimeHint, "/"); i >= 0 && i+1 < len(mimeHint) {
		return mimeHint, "." + mimeHint[i+1:]
	}
	return mimeHint, ""
}

func (m *mediaService) r2Client() (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(m.config.R2.AccessKey, m.config.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", m.config.R2.AccountID))
	}), nil
}

func (m *mediaService) uploadToR2(ctx context.Context, key string, data []byte, mime string) error {
	client, err := m.r2Client()
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(m.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime),
	}
	if _, err := client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
