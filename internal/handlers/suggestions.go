package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/suggestion-board/board/internal/services"
	"github.com/suggestion-board/board/types"
)

// Suggestions renders the feed page. The feed itself is loaded as a fragment.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	h.page(w, r, http.StatusOK, "suggestions", struct{ FeedURL string }{
		FeedURL: fmt.Sprintf("/showSuggestion_async/%d", sess.UserID),
	})
}

func (h *Handler) NewSuggestion(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	req, err := decodeSuggestionForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := h.suggestions.Create(r.Context(), req, sess.UserID); err != nil {
		if !flashValidation(sess, err) {
			h.fail(w, r, err)
			return
		}
	}
	h.redirect(w, r, "/suggestions")
}

// Like records a like by the signed-in user. Any user id in the form is ignored.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.likes.Like(r.Context(), currentSession(r).UserID, id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.redirect(w, r, "/suggestions")
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	currentSession(r).EditingSuggestionID = id
	h.redirect(w, r, "/loadedit")
}

func (h *Handler) LoadEdit(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if sess.EditingSuggestionID == 0 {
		http.Redirect(w, r, "/suggestions", http.StatusFound)
		return
	}

	suggestion, _, err := h.suggestions.Get(r.Context(), sess.EditingSuggestionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "edit", suggestion)
}

func (h *Handler) RepostSuggestion(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	req, err := decodeSuggestionForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if req.SuggestionID == 0 {
		req.SuggestionID = sess.EditingSuggestionID
	}
	if req.SuggestionID == 0 {
		h.fail(w, r, errInvalidID)
		return
	}

	if _, err := h.suggestions.Update(r.Context(), req, sess.UserID); err != nil {
		if !flashValidation(sess, err) {
			h.fail(w, r, err)
			return
		}
		h.redirect(w, r, "/suggestions")
		return
	}
	sess.EditingSuggestionID = 0
	h.redirect(w, r, "/suggestions")
}

// SuggestionFeed renders the feed fragment. The path names the viewer, who
// must be the signed-in user.
func (h *Handler) SuggestionFeed(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	viewerID, err := urlID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if viewerID != sess.UserID {
		h.fail(w, r, services.ErrForbidden)
		return
	}

	f, err := h.feed.Compose(r.Context(), viewerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.fragment(w, r, "suggestionfeed", feedData{Feed: f, ViewerID: viewerID})
}

func (h *Handler) SuggestionDetails(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	currentSession(r).ViewingSuggestionID = id
	h.redirect(w, r, "/seesuggestion")
}

func (h *Handler) SeeSuggestion(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if sess.ViewingSuggestionID == 0 {
		http.Redirect(w, r, "/suggestions", http.StatusFound)
		return
	}

	suggestion, author, err := h.suggestions.Get(r.Context(), sess.ViewingSuggestionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "suggestiondetails", detailData{Suggestion: suggestion, Author: author})
}

// Likers renders the table of users who liked the suggestion being viewed.
func (h *Handler) Likers(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if sess.ViewingSuggestionID == 0 {
		http.Redirect(w, r, "/suggestions", http.StatusFound)
		return
	}

	users, err := h.suggestions.Likers(r.Context(), sess.ViewingSuggestionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.fragment(w, r, "likestable", users)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id, err := formID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.suggestions.Delete(r.Context(), id, sess.UserID); err != nil {
		h.fail(w, r, err)
		return
	}

	if sess.ViewingSuggestionID == id {
		sess.ViewingSuggestionID = 0
	}
	if sess.EditingSuggestionID == id {
		sess.EditingSuggestionID = 0
	}
	h.redirect(w, r, "/suggestions")
}

// flashValidation queues the messages of a ValidationError and reports
// whether err was one.
func flashValidation(sess *types.Session, err error) bool {
	var vErr *services.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	flashAll(sess, vErr.Messages)
	return true
}
