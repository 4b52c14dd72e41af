package services

import (
	"context"

	"github.com/suggestion-board/board/types"
)

// LikeRepository defines persistence operations for the likes ledger.
type LikeRepository interface {
	Add(ctx context.Context, userID, suggestionID int) (bool, error)
	List(ctx context.Context) ([]types.Like, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	Likers(ctx context.Context, suggestionID int) ([]types.User, error)
}

// LikeService records likes.
type LikeService struct {
	repo        LikeRepository
	suggestions SuggestionRepository
	activity    *ActivityRecorder
}

func NewLikeService(repo LikeRepository, suggestions SuggestionRepository, activity *ActivityRecorder) *LikeService {
	return &LikeService{repo: repo, suggestions: suggestions, activity: activity}
}

// Like records that userID liked suggestionID. Liking the same suggestion
// again is a no-op and reports false.
func (s *LikeService) Like(ctx context.Context, userID, suggestionID int) (bool, error) {
	if _, err := s.suggestions.Get(ctx, suggestionID); err != nil {
		return false, err
	}

	created, err := s.repo.Add(ctx, userID, suggestionID)
	if err != nil {
		return false, err
	}
	if created {
		s.activity.Record(ctx, types.ActivitySuggestionLiked, userID, suggestionID)
	}
	return created, nil
}
