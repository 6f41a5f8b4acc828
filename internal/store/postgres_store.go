package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bagritech/studio-api/internal/models"
)

// PostgresStore persists each snapshot slot as one JSONB row, for teams that
// want the shared feed to survive the host machine.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

var _ SnapshotStore = (*PostgresStore)(nil)

func (s *PostgresStore) initSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			slot TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) save(ctx context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO snapshots (slot, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET payload = $2, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, slot, payload); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *PostgresStore) load(ctx context.Context, slot string, v any) (bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE slot = $1`, slot).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return true, json.Unmarshal(payload, v)
}

func (s *PostgresStore) LoadPosts(ctx context.Context) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	ok, err := s.load(ctx, SlotPosts, &posts)
	if err != nil || !ok {
		return nil, err
	}
	return posts, nil
}

func (s *PostgresStore) SavePosts(ctx context.Context, posts []models.SocialPost) error {
	if posts == nil {
		posts = []models.SocialPost{}
	}
	return s.save(ctx, SlotPosts, posts)
}

func (s *PostgresStore) LoadVeille(ctx context.Context) ([]models.CompetitiveIntelligence, error) {
	var items []models.CompetitiveIntelligence
	ok, err := s.load(ctx, SlotVeille, &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

func (s *PostgresStore) SaveVeille(ctx context.Context, items []models.CompetitiveIntelligence) error {
	if items == nil {
		items = []models.CompetitiveIntelligence{}
	}
	return s.save(ctx, SlotVeille, items)
}
