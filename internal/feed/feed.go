// Package feed derives the rendering-ready suggestion feed from the raw
// suggestions, users and likes ledger. It performs no I/O.
package feed

import "github.com/suggestion-board/board/types"

// Item is one suggestion annotated for display.
type Item struct {
	Suggestion    types.Suggestion
	Author        types.User
	HasAuthor     bool
	Likes         int
	LikedByViewer bool
}

// Feed is the composed view of the board for a single viewer.
type Feed struct {
	Suggestions []types.Suggestion
	Users       []types.User

	// LikeCounts holds the number of ledger rows per suggestion id.
	// Suggestions nobody liked are absent.
	LikeCounts map[int]int

	// NotLiked lists, in feed order, the suggestion ids the viewer has not liked.
	NotLiked []int

	Items []Item

	liked map[int]struct{}
}

// LikesFor returns the like count of a suggestion, zero when it has none.
func (f Feed) LikesFor(suggestionID int) int {
	return f.LikeCounts[suggestionID]
}

// HasLiked reports whether the viewer has liked the suggestion.
func (f Feed) HasLiked(suggestionID int) bool {
	_, ok := f.liked[suggestionID]
	return ok
}

// Compose builds the feed for viewerID. Suggestions keep the order they were
// given in. Every ledger row counts, so a duplicated pair counts twice.
func Compose(suggestions []types.Suggestion, users []types.User, likes []types.Like, viewerID int) Feed {
	counts := make(map[int]int)
	liked := make(map[int]struct{})
	for _, like := range likes {
		counts[like.SuggestionID]++
		if like.UserID == viewerID {
			liked[like.SuggestionID] = struct{}{}
		}
	}

	authors := make(map[int]types.User, len(users))
	for _, user := range users {
		authors[user.ID] = user
	}

	notLiked := make([]int, 0, len(suggestions))
	items := make([]Item, 0, len(suggestions))
	for _, suggestion := range suggestions {
		_, viewerLiked := liked[suggestion.ID]
		if !viewerLiked {
			notLiked = append(notLiked, suggestion.ID)
		}
		author, ok := authors[suggestion.AuthorID]
		items = append(items, Item{
			Suggestion:    suggestion,
			Author:        author,
			HasAuthor:     ok,
			Likes:         counts[suggestion.ID],
			LikedByViewer: viewerLiked,
		})
	}

	return Feed{
		Suggestions: suggestions,
		Users:       users,
		LikeCounts:  counts,
		NotLiked:    notLiked,
		Items:       items,
		liked:       liked,
	}
}
