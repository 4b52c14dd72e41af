package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/suggestion-board/board/internal/services"
	"github.com/suggestion-board/board/internal/store"
	"github.com/suggestion-board/board/types"
)

type contextKey string

const contextSessionKey contextKey = "session"

const (
	formFieldName            = "fname"
	formFieldAlias           = "alias"
	formFieldEmail           = "email"
	formFieldPassword        = "password"
	formFieldConfirmPassword = "confirm_password"
	formFieldSuggestion      = "suggestion"
	formFieldSuggestionID    = "suggestion_id"
)

var errInvalidID = errors.New("invalid id")

// currentSession returns the request's session. Requests that did not pass
// through loadSession get a throwaway anonymous one.
func currentSession(r *http.Request) *types.Session {
	if sess, ok := r.Context().Value(contextSessionKey).(*types.Session); ok {
		return sess
	}
	return &types.Session{}
}

func withSession(ctx context.Context, sess *types.Session) context.Context {
	return context.WithValue(ctx, contextSessionKey, sess)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, errInvalidID
	}
	return id, nil
}

func urlID(r *http.Request, param string) (int, error) {
	return parseID(chi.URLParam(r, param))
}

func formID(r *http.Request) (int, error) {
	return parseID(r.PostFormValue(formFieldSuggestionID))
}

func decodeRegisterForm(r *http.Request) services.RegisterRequest {
	return services.RegisterRequest{
		Name:            r.PostFormValue(formFieldName),
		Alias:           r.PostFormValue(formFieldAlias),
		Email:           r.PostFormValue(formFieldEmail),
		Password:        r.PostFormValue(formFieldPassword),
		ConfirmPassword: r.PostFormValue(formFieldConfirmPassword),
	}
}

func decodeLoginForm(r *http.Request) services.LoginRequest {
	return services.LoginRequest{
		Email:    r.PostFormValue(formFieldEmail),
		Password: r.PostFormValue(formFieldPassword),
	}
}

// decodeSuggestionForm reads the suggestion text and, when present, its id.
func decodeSuggestionForm(r *http.Request) (services.SuggestionRequest, error) {
	req := services.SuggestionRequest{Text: r.PostFormValue(formFieldSuggestion)}
	if raw := r.PostFormValue(formFieldSuggestionID); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return req, err
		}
		req.SuggestionID = id
	}
	return req, nil
}

// fail maps service and store errors onto an error page.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.errorPage(w, r, http.StatusNotFound, "We could not find what you were looking for.")
	case errors.Is(err, services.ErrForbidden):
		h.errorPage(w, r, http.StatusForbidden, "Only the author can change this suggestion.")
	case errors.Is(err, errInvalidID):
		h.errorPage(w, r, http.StatusBadRequest, "That request did not name a valid suggestion.")
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.errorPage(w, r, http.StatusInternalServerError, "Something went wrong on our side.")
	}
}

// redirect saves the session and sends the browser to path.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string) {
	if err := h.sessions.Save(w, r, *currentSession(r)); err != nil {
		slog.ErrorContext(r.Context(), "save session", "error", err)
		h.errorPage(w, r, http.StatusInternalServerError, "Something went wrong on our side.")
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}

func flashAll(sess *types.Session, messages []string) {
	for _, message := range messages {
		sess.AddFlash(message)
	}
}
