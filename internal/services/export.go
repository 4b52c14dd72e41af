package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/suggestion-board/board/types"
)

const exportKeyPrefix = "exports/board-"

// ObjectWriter uploads objects. *storage.Storage satisfies it.
type ObjectWriter interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// ExportService writes JSON snapshots of the board to object storage.
type ExportService struct {
	users       UserRepository
	suggestions SuggestionRepository
	likes       LikeRepository
	objects     ObjectWriter
	now         func() time.Time
}

func NewExportService(users UserRepository, suggestions SuggestionRepository, likes LikeRepository, objects ObjectWriter) *ExportService {
	return &ExportService{
		users:       users,
		suggestions: suggestions,
		likes:       likes,
		objects:     objects,
		now:         time.Now,
	}
}

// Export uploads a snapshot and returns the object key it was written to.
// Password hashes are never part of the document.
func (s *ExportService) Export(ctx context.Context) (string, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list users: %w", err)
	}
	suggestions, err := s.suggestions.ListNewestFirst(ctx)
	if err != nil {
		return "", fmt.Errorf("list suggestions: %w", err)
	}
	likes, err := s.likes.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list likes: %w", err)
	}

	exportedAt := s.now().UTC()
	data, err := json.Marshal(types.BoardSnapshot{
		ExportedAt:  exportedAt,
		Users:       users,
		Suggestions: suggestions,
		Likes:       likes,
	})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := exportKeyPrefix + exportedAt.Format("20060102T150405Z") + ".json"
	if err := s.objects.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return key, nil
}
