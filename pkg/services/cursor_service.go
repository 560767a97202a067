package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/cursor"
)

// CursorService persists stream read positions for external consumers, so a
// reader that restarts can resume the event stream where it left off.
type CursorService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCursorService creates a new cursor service.
func NewCursorService(client *ent.Client, logger *slog.Logger) *CursorService {
	return &CursorService{
		client: client,
		logger: logger.With("service", "cursor"),
	}
}

// Save upserts the position for a named stream. Positions only move
// forward; saving a position behind the stored one is a no-op and returns
// the stored cursor.
func (s *CursorService) Save(ctx context.Context, streamName string, position int64, checkpoint string) (*ent.Cursor, error) {
	if streamName == "" {
		return nil, NewValidationError("stream_name", "stream_name is required")
	}
	if position < 0 {
		return nil, NewValidationError("position", "position must be non-negative")
	}

	existing, err := s.client.Cursor.Query().
		Where(cursor.StreamNameEQ(streamName)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query cursor: %w", err)
		}
		created, err := s.client.Cursor.Create().
			SetStreamName(streamName).
			SetPosition(position).
			SetCheckpoint(checkpoint).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create cursor: %w", err)
		}
		return created, nil
	}

	if position < existing.Position {
		return existing, nil
	}
	upd := s.client.Cursor.UpdateOne(existing).SetPosition(position)
	if checkpoint != "" {
		upd = upd.SetCheckpoint(checkpoint)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update cursor: %w", err)
	}
	return updated, nil
}

// Get returns the cursor for a stream. ErrNotFound when the stream has
// never saved one.
func (s *CursorService) Get(ctx context.Context, streamName string) (*ent.Cursor, error) {
	if streamName == "" {
		return nil, NewValidationError("stream_name", "stream_name is required")
	}
	cur, err := s.client.Cursor.Query().
		Where(cursor.StreamNameEQ(streamName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cursor: %w", err)
	}
	return cur, nil
}
