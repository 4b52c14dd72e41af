// Package handlers serves the board's HTML pages, form actions and the
// fragments the page script loads.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suggestion-board/board/internal/services"
	"github.com/suggestion-board/board/internal/session"
)

// Services bundles the use-cases the handlers call.
type Services struct {
	Users       *services.UserService
	Suggestions *services.SuggestionService
	Likes       *services.LikeService
	Feed        *services.FeedService
	Profiles    *services.ProfileService
}

// Handler provides the board's HTTP endpoints.
type Handler struct {
	users       *services.UserService
	suggestions *services.SuggestionService
	likes       *services.LikeService
	feed        *services.FeedService
	profiles    *services.ProfileService
	sessions    session.Store
	views       *views
}

// New constructs a Handler and parses its templates.
func New(svc Services, sessions session.Store) (*Handler, error) {
	v, err := loadViews()
	if err != nil {
		return nil, err
	}
	return &Handler{
		users:       svc.Users,
		suggestions: svc.Suggestions,
		likes:       svc.Likes,
		feed:        svc.Feed,
		profiles:    svc.Profiles,
		sessions:    sessions,
		views:       v,
	}, nil
}

// Routes registers every board route on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", Healthz)
	r.Handle("/static/*", staticFiles())

	r.Group(func(r chi.Router) {
		r.Use(h.loadSession)

		r.Get("/", h.Landing)
		r.Get("/gotoregister", h.GotoRegister)
		r.Post("/register", h.Register)
		r.Get("/gotologin", h.GotoLogin)
		r.Post("/login", h.Login)
		r.Get("/logout", h.Logout)
		r.Post("/logout", h.Logout)
		r.Get("/userprofile/{alias}", h.UserProfile)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/suggestions", h.Suggestions)
			r.Post("/suggestions", h.Suggestions)
			r.Post("/new_suggestion", h.NewSuggestion)
			r.Post("/like", h.Like)
			r.Get("/edit/{id}", h.Edit)
			r.Get("/loadedit", h.LoadEdit)
			r.Post("/repostsuggestion", h.RepostSuggestion)
			r.Get("/showSuggestion_async/{userID}", h.SuggestionFeed)
			r.Get("/suggestiondetails/{id}", h.SuggestionDetails)
			r.Get("/seesuggestion", h.SeeSuggestion)
			r.Get("/showLikes_async", h.Likers)
			r.Post("/delete", h.Delete)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			h.errorPage(w, r, http.StatusNotFound, "There is no page at this address.")
		})
	})
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Load(r)
		if err != nil {
			slog.ErrorContext(r.Context(), "load session", "error", err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), &sess)))
	})
}

// requireSession sends anonymous visitors back to the landing page.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !currentSession(r).Authenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
