package services

import (
	"context"
	"fmt"

	"github.com/suggestion-board/board/types"
)

// ProfileService aggregates per-user statistics.
type ProfileService struct {
	users       UserRepository
	suggestions SuggestionRepository
	likes       LikeRepository
}

func NewProfileService(users UserRepository, suggestions SuggestionRepository, likes LikeRepository) *ProfileService {
	return &ProfileService{users: users, suggestions: suggestions, likes: likes}
}

// Profile resolves alias and counts the likes the user gave and the
// suggestions they posted. Unknown aliases return store.ErrNotFound.
func (s *ProfileService) Profile(ctx context.Context, alias string) (types.Profile, error) {
	user, err := s.users.GetByAlias(ctx, alias)
	if err != nil {
		return types.Profile{}, err
	}

	likeCount, err := s.likes.CountByUser(ctx, user.ID)
	if err != nil {
		return types.Profile{}, fmt.Errorf("count likes: %w", err)
	}
	postCount, err := s.suggestions.CountByAuthor(ctx, user.ID)
	if err != nil {
		return types.Profile{}, fmt.Errorf("count suggestions: %w", err)
	}

	return types.Profile{
		User:      user,
		LikeCount: likeCount,
		PostCount: postCount,
	}, nil
}
