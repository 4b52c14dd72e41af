package types

import "time"

// User represents a registered member of the board.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's real or display name.
	Name string `json:"name" db:"name"`

	// Alias is the unique public handle shown next to suggestions
	// and used in profile URLs.
	Alias string `json:"alias" db:"alias"`

	// Email is the user's email address. It is unique and used to log in.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never rendered or exported.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the aggregated view of a user shown on the profile page.
type Profile struct {
	User User `json:"user"`

	// LikeCount is the number of likes the user has given.
	LikeCount int `json:"like_count"`

	// PostCount is the number of suggestions the user has authored.
	PostCount int `json:"post_count"`
}
