package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suggestion-board/board/internal/services"
	"github.com/suggestion-board/board/internal/store"
	"github.com/suggestion-board/board/types"
)

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "landing", nil)
}

func (h *Handler) GotoRegister(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "register", nil)
}

// Register validates the form and creates the account. Every outcome is
// reported as flashes on the registration page.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	req := decodeRegisterForm(r)

	messages, err := h.users.ValidateRegistration(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(messages) > 0 {
		flashAll(sess, messages)
		h.redirect(w, r, "/gotoregister")
		return
	}

	if _, err := h.users.Register(r.Context(), req); err != nil {
		if !errors.Is(err, store.ErrConflict) {
			h.fail(w, r, err)
			return
		}
		sess.AddFlash(services.MsgRegistrationFailed)
		h.redirect(w, r, "/gotoregister")
		return
	}

	sess.AddFlash(services.MsgRegistered)
	h.redirect(w, r, "/gotoregister")
}

func (h *Handler) GotoLogin(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "login", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)

	loggedIn, err := h.users.Login(r.Context(), decodeLoginForm(r))
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			h.fail(w, r, err)
			return
		}
		sess.AddFlash(services.MsgLoginFailed)
		h.redirect(w, r, "/gotologin")
		return
	}

	*sess = loggedIn
	slog.InfoContext(r.Context(), "user logged in", "user_id", loggedIn.UserID)
	h.redirect(w, r, "/suggestions")
}

// Logout drops the whole session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		slog.ErrorContext(r.Context(), "clear session", "error", err)
	}
	*currentSession(r) = types.Session{}
	http.Redirect(w, r, "/", http.StatusFound)
}

// UserProfile shows a user's post and like counts. It is public.
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Profile(r.Context(), chi.URLParam(r, "alias"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "userprofile", profile)
}
