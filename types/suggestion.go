package types

import "time"

// Suggestion is a short text post authored by a user.
type Suggestion struct {
	// ID is the unique identifier of the suggestion.
	// Higher ids are newer.
	ID int `json:"id" db:"id"`

	// AuthorID identifies the user who posted the suggestion.
	AuthorID int `json:"author_id" db:"author_id"`

	// Text is the body of the suggestion, 1 to 1000 characters.
	Text string `json:"text" db:"suggestion"`

	// CreatedAt is the timestamp when the suggestion was posted.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent edit.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Like records that a user endorsed a suggestion.
// The (UserID, SuggestionID) pair is unique.
type Like struct {
	UserID       int       `json:"user_id" db:"user_id"`
	SuggestionID int       `json:"suggestion_id" db:"suggestion_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
