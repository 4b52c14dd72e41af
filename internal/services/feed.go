package services

import (
	"context"
	"fmt"

	"github.com/suggestion-board/board/internal/feed"
)

// FeedService loads the board state and composes the viewer's feed.
type FeedService struct {
	suggestions SuggestionRepository
	users       UserRepository
	likes       LikeRepository
}

func NewFeedService(suggestions SuggestionRepository, users UserRepository, likes LikeRepository) *FeedService {
	return &FeedService{suggestions: suggestions, users: users, likes: likes}
}

// Compose builds the feed for viewerID from the current state of the store.
func (s *FeedService) Compose(ctx context.Context, viewerID int) (feed.Feed, error) {
	suggestions, err := s.suggestions.ListNewestFirst(ctx)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list suggestions: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list users: %w", err)
	}
	likes, err := s.likes.List(ctx)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list likes: %w", err)
	}
	return feed.Compose(suggestions, users, likes, viewerID), nil
}
