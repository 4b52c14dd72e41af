package types

// Session is the per-visitor record carried between requests.
// The zero value is an anonymous visitor with no navigation state.
type Session struct {
	UserID int    `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Alias  string `json:"alias,omitempty"`
	Email  string `json:"email,omitempty"`

	// ViewingSuggestionID is the suggestion opened on the detail page.
	ViewingSuggestionID int `json:"viewing_suggestion_id,omitempty"`

	// EditingSuggestionID is the suggestion loaded into the edit form.
	EditingSuggestionID int `json:"editing_suggestion_id,omitempty"`

	// Flashes are one-shot messages shown on the next rendered page.
	Flashes []string `json:"flashes,omitempty"`
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool {
	return s.UserID > 0
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(message string) {
	s.Flashes = append(s.Flashes, message)
}

// PopFlashes returns the queued messages and clears them.
func (s *Session) PopFlashes() []string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
