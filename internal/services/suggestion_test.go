package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suggestion-board/board/internal/store"
	"github.com/suggestion-board/board/types"
)

func seededBoard() *memBoard {
	b := newMemBoard()
	b.users = []types.User{
		{ID: 1, Name: "Alice Liddell", Alias: "alice"},
		{ID: 2, Name: "Bobby Tables", Alias: "bobby"},
		{ID: 3, Name: "Carol Danvers", Alias: "carol"},
	}
	b.suggestions = []types.Suggestion{
		{ID: 10, AuthorID: 1, Text: "More bike racks"},
		{ID: 11, AuthorID: 2, Text: "Longer lunch"},
		{ID: 12, AuthorID: 3, Text: "Standing desks"},
	}
	return b
}

func newSuggestionService(b *memBoard, enforceOwnership bool) *SuggestionService {
	return NewSuggestionService(memSuggestions{b}, memUsers{b}, memLikes{b}, nil, enforceOwnership)
}

func TestValidateSuggestionBounds(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{name: "empty", text: "", valid: false},
		{name: "one character", text: "a", valid: true},
		{name: "one thousand characters", text: strings.Repeat("a", 1000), valid: true},
		{name: "one thousand and one characters", text: strings.Repeat("a", 1001), valid: false},
		{name: "multibyte counted as characters", text: strings.Repeat("é", 1000), valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := ValidateSuggestion(SuggestionRequest{Text: tt.text})
			if tt.valid {
				assert.Empty(t, messages)
				return
			}
			assert.Equal(t, []string{MsgSuggestionLength}, messages)
		})
	}
}

func TestSuggestionService_Create(t *testing.T) {
	b := seededBoard()
	svc := newSuggestionService(b, true)

	created, err := svc.Create(context.Background(), SuggestionRequest{Text: "Free coffee"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, created.AuthorID)
	assert.Len(t, b.suggestions, 4)

	_, err = svc.Create(context.Background(), SuggestionRequest{Text: ""}, 2)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{MsgSuggestionLength}, vErr.Messages)
	assert.Len(t, b.suggestions, 4)
}

func TestSuggestionService_UpdateOwnership(t *testing.T) {
	t.Run("author may edit", func(t *testing.T) {
		b := seededBoard()
		updated, err := newSuggestionService(b, true).Update(context.Background(), SuggestionRequest{SuggestionID: 10, Text: "Even more bike racks"}, 1)
		require.NoError(t, err)
		assert.Equal(t, "Even more bike racks", updated.Text)
	})

	t.Run("others are rejected when enforced", func(t *testing.T) {
		b := seededBoard()
		_, err := newSuggestionService(b, true).Update(context.Background(), SuggestionRequest{SuggestionID: 10, Text: "hijacked"}, 2)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, "More bike racks", b.suggestions[0].Text)
	})

	t.Run("anyone may edit when not enforced", func(t *testing.T) {
		b := seededBoard()
		updated, err := newSuggestionService(b, false).Update(context.Background(), SuggestionRequest{SuggestionID: 10, Text: "community edit"}, 2)
		require.NoError(t, err)
		assert.Equal(t, "community edit", updated.Text)
	})

	t.Run("missing suggestion", func(t *testing.T) {
		b := seededBoard()
		_, err := newSuggestionService(b, false).Update(context.Background(), SuggestionRequest{SuggestionID: 99, Text: "ghost"}, 1)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invalid text is rejected before lookup", func(t *testing.T) {
		b := seededBoard()
		_, err := newSuggestionService(b, true).Update(context.Background(), SuggestionRequest{SuggestionID: 99, Text: strings.Repeat("x", 1001)}, 1)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestSuggestionService_DeleteRemovesLikes(t *testing.T) {
	b := seededBoard()
	b.likes = []types.Like{{UserID: 2, SuggestionID: 10}, {UserID: 3, SuggestionID: 11}}
	svc := newSuggestionService(b, true)

	assert.ErrorIs(t, svc.Delete(context.Background(), 10, 2), ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), 10, 1))
	assert.Len(t, b.suggestions, 2)
	assert.Equal(t, []types.Like{{UserID: 3, SuggestionID: 11}}, b.likes)
	assert.ErrorIs(t, svc.Delete(context.Background(), 10, 1), store.ErrNotFound)
}

func TestSuggestionService_GetAndLikers(t *testing.T) {
	b := seededBoard()
	b.likes = []types.Like{{UserID: 2, SuggestionID: 12}, {UserID: 1, SuggestionID: 12}}
	svc := newSuggestionService(b, true)

	suggestion, author, err := svc.Get(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Standing desks", suggestion.Text)
	assert.Equal(t, "carol", author.Alias)

	likers, err := svc.Likers(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, likers, 2)
	assert.Equal(t, "bobby", likers[0].Alias)
	assert.Equal(t, "alice", likers[1].Alias)

	_, _, err = svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLikeService_Like(t *testing.T) {
	b := seededBoard()
	svc := NewLikeService(memLikes{b}, memSuggestions{b}, nil)

	created, err := svc.Like(context.Background(), 1, 11)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Like(context.Background(), 1, 11)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, b.likes, 1)

	_, err = svc.Like(context.Background(), 1, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
