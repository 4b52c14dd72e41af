package types

import "time"

// ActivityKind names a board mutation published on the activity channel.
type ActivityKind string

const (
	ActivityUserRegistered    ActivityKind = "user.registered"
	ActivitySuggestionCreated ActivityKind = "suggestion.created"
	ActivitySuggestionUpdated ActivityKind = "suggestion.updated"
	ActivitySuggestionDeleted ActivityKind = "suggestion.deleted"
	ActivitySuggestionLiked   ActivityKind = "suggestion.liked"
)

// ActivityEvent is the JSON payload published for every board mutation.
type ActivityEvent struct {
	ID           string       `json:"id"`
	Kind         ActivityKind `json:"kind"`
	UserID       int          `json:"user_id"`
	SuggestionID int          `json:"suggestion_id,omitempty"`
	OccurredAt   time.Time    `json:"occurred_at"`
}

// BoardSnapshot is the document written by the export command.
type BoardSnapshot struct {
	ExportedAt  time.Time    `json:"exported_at"`
	Users       []User       `json:"users"`
	Suggestions []Suggestion `json:"suggestions"`
	Likes       []Like       `json:"likes"`
}
