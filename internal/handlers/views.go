package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/suggestion-board/board/internal/feed"
	"github.com/suggestion-board/board/types"
)

//go:embed templates static
var assets embed.FS

var pageNames = []string{
	"landing",
	"register",
	"login",
	"suggestions",
	"edit",
	"suggestiondetails",
	"userprofile",
	"error",
}

var fragmentNames = []string{
	"suggestionfeed",
	"likestable",
}

// views holds the parsed page and fragment templates.
type views struct {
	pages     map[string]*template.Template
	fragments map[string]*template.Template
}

func loadViews() (*views, error) {
	v := &views{
		pages:     make(map[string]*template.Template, len(pageNames)),
		fragments: make(map[string]*template.Template, len(fragmentNames)),
	}
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(assets, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		v.pages[name] = tmpl
	}
	for _, name := range fragmentNames {
		tmpl, err := template.ParseFS(assets, "templates/partials/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse fragment %s: %w", name, err)
		}
		v.fragments[name] = tmpl
	}
	return v, nil
}

func staticFiles() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// pageData is what every full page template receives.
type pageData struct {
	Session types.Session
	Flashes []string
	Data    any
}

type errorData struct {
	Status  int
	Title   string
	Message string
}

type detailData struct {
	Suggestion types.Suggestion
	Author     types.User
}

type feedData struct {
	Feed     feed.Feed
	ViewerID int
}

// page renders a full page. Pending flashes are consumed and the session is
// saved before anything is written.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	sess := currentSession(r)
	flashes := sess.PopFlashes()
	if len(flashes) > 0 {
		if err := h.sessions.Save(w, r, *sess); err != nil {
			slog.ErrorContext(r.Context(), "save session", "error", err)
		}
	}

	var buf bytes.Buffer
	err := h.views.pages[name].ExecuteTemplate(&buf, "layout", pageData{
		Session: *sess,
		Flashes: flashes,
		Data:    data,
	})
	h.write(w, r, status, name, &buf, err)
}

// fragment renders a partial loaded by the page script.
func (h *Handler) fragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	err := h.views.fragments[name].ExecuteTemplate(&buf, "fragment", data)
	h.write(w, r, http.StatusOK, name, &buf, err)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, name string, buf *bytes.Buffer, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.page(w, r, status, "error", errorData{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	})
}
