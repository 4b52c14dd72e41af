package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suggestion-board/board/types"
)

func suggestions(ids ...int) []types.Suggestion {
	out := make([]types.Suggestion, 0, len(ids))
	for _, id := range ids {
		out = append(out, types.Suggestion{ID: id, AuthorID: 1, Text: "text"})
	}
	return out
}

func TestComposeCountsAndNotLiked(t *testing.T) {
	users := []types.User{{ID: 1, Alias: "user1"}, {ID: 2, Alias: "user2"}}
	likes := []types.Like{
		{UserID: 1, SuggestionID: 1},
		{UserID: 2, SuggestionID: 1},
		{UserID: 1, SuggestionID: 2},
	}

	f := Compose(suggestions(1, 2, 3), users, likes, 1)

	assert.Equal(t, map[int]int{1: 2, 2: 1}, f.LikeCounts)
	assert.Equal(t, []int{3}, f.NotLiked)
	assert.Equal(t, 0, f.LikesFor(3))
	assert.True(t, f.HasLiked(1))
	assert.False(t, f.HasLiked(3))

	require.Len(t, f.Items, 3)
	assert.Equal(t, 2, f.Items[0].Likes)
	assert.True(t, f.Items[0].LikedByViewer)
	assert.Equal(t, "user1", f.Items[0].Author.Alias)
	assert.False(t, f.Items[2].LikedByViewer)
	assert.Equal(t, 0, f.Items[2].Likes)
}

func TestComposeForOtherViewer(t *testing.T) {
	likes := []types.Like{
		{UserID: 1, SuggestionID: 1},
		{UserID: 2, SuggestionID: 1},
		{UserID: 1, SuggestionID: 2},
	}

	f := Compose(suggestions(3, 2, 1), nil, likes, 2)

	assert.Equal(t, []int{3, 2}, f.NotLiked)
}

func TestComposeEmptyLedger(t *testing.T) {
	f := Compose(suggestions(5, 4), nil, nil, 1)

	assert.Empty(t, f.LikeCounts)
	assert.Equal(t, []int{5, 4}, f.NotLiked)
	for _, item := range f.Items {
		assert.Zero(t, item.Likes)
		assert.False(t, item.LikedByViewer)
	}
}

func TestComposeCountsEveryLedgerRow(t *testing.T) {
	likes := []types.Like{
		{UserID: 1, SuggestionID: 1},
		{UserID: 1, SuggestionID: 1},
	}

	f := Compose(suggestions(1), nil, likes, 1)

	assert.Equal(t, 2, f.LikesFor(1))
	assert.Empty(t, f.NotLiked)
}

func TestComposeMissingAuthor(t *testing.T) {
	f := Compose([]types.Suggestion{{ID: 1, AuthorID: 42}}, []types.User{{ID: 1}}, nil, 1)

	require.Len(t, f.Items, 1)
	assert.False(t, f.Items[0].HasAuthor)
}

func TestComposeNoSuggestions(t *testing.T) {
	f := Compose(nil, nil, []types.Like{{UserID: 1, SuggestionID: 9}}, 1)

	assert.Empty(t, f.NotLiked)
	assert.Empty(t, f.Items)
	assert.Equal(t, 1, f.LikesFor(9))
}
