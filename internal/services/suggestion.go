package services

import (
	"context"
	"fmt"

	"github.com/suggestion-board/board/types"
)

// SuggestionRepository defines persistence operations for suggestions.
type SuggestionRepository interface {
	Get(ctx context.Context, id int) (types.Suggestion, error)
	ListNewestFirst(ctx context.Context) ([]types.Suggestion, error)
	CountByAuthor(ctx context.Context, authorID int) (int, error)
	Create(ctx context.Context, suggestion types.Suggestion) (types.Suggestion, error)
	UpdateText(ctx context.Context, id int, text string) (types.Suggestion, error)
	Delete(ctx context.Context, id int) error
}

// SuggestionService encapsulates suggestion use-cases.
type SuggestionService struct {
	repo             SuggestionRepository
	users            UserRepository
	likes            LikeRepository
	activity         *ActivityRecorder
	enforceOwnership bool
}

func NewSuggestionService(
	repo SuggestionRepository,
	users UserRepository,
	likes LikeRepository,
	activity *ActivityRecorder,
	enforceOwnership bool,
) *SuggestionService {
	return &SuggestionService{
		repo:             repo,
		users:            users,
		likes:            likes,
		activity:         activity,
		enforceOwnership: enforceOwnership,
	}
}

// Create validates and stores a suggestion authored by authorID.
func (s *SuggestionService) Create(ctx context.Context, req SuggestionRequest, authorID int) (types.Suggestion, error) {
	if err := validationErr(ValidateSuggestion(req)); err != nil {
		return types.Suggestion{}, err
	}

	created, err := s.repo.Create(ctx, types.Suggestion{
		AuthorID: authorID,
		Text:     req.Text,
	})
	if err != nil {
		return types.Suggestion{}, err
	}

	s.activity.Record(ctx, types.ActivitySuggestionCreated, authorID, created.ID)
	return created, nil
}

// Update validates and overwrites the text of req.SuggestionID.
func (s *SuggestionService) Update(ctx context.Context, req SuggestionRequest, actorID int) (types.Suggestion, error) {
	if err := validationErr(ValidateSuggestion(req)); err != nil {
		return types.Suggestion{}, err
	}
	if err := s.authorize(ctx, req.SuggestionID, actorID); err != nil {
		return types.Suggestion{}, err
	}

	updated, err := s.repo.UpdateText(ctx, req.SuggestionID, req.Text)
	if err != nil {
		return types.Suggestion{}, err
	}

	s.activity.Record(ctx, types.ActivitySuggestionUpdated, actorID, updated.ID)
	return updated, nil
}

// Delete removes a suggestion and, through the schema, its likes.
func (s *SuggestionService) Delete(ctx context.Context, id, actorID int) error {
	if err := s.authorize(ctx, id, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, types.ActivitySuggestionDeleted, actorID, id)
	return nil
}

// Get returns a suggestion together with its author.
func (s *SuggestionService) Get(ctx context.Context, id int) (types.Suggestion, types.User, error) {
	suggestion, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.Suggestion{}, types.User{}, err
	}
	author, err := s.users.GetByID(ctx, suggestion.AuthorID)
	if err != nil {
		return types.Suggestion{}, types.User{}, fmt.Errorf("load author %d: %w", suggestion.AuthorID, err)
	}
	return suggestion, author, nil
}

// Likers returns the users who liked a suggestion.
func (s *SuggestionService) Likers(ctx context.Context, id int) ([]types.User, error) {
	return s.likes.Likers(ctx, id)
}

func (s *SuggestionService) authorize(ctx context.Context, id, actorID int) error {
	if !s.enforceOwnership {
		return nil
	}
	suggestion, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if suggestion.AuthorID != actorID {
		return ErrForbidden
	}
	return nil
}
