package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/suggestion-board/board/config"
	"github.com/suggestion-board/board/internal/handlers"
)

func healthRoutes(r chi.Router) {
	r.Get("/healthz", handlers.Healthz)
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })
}

func TestRouterServesRoutes(t *testing.T) {
	router := newRouter(config.Config{}, healthRoutes)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouterRecoversPanics(t *testing.T) {
	router := newRouter(config.Config{}, healthRoutes)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouterCORS(t *testing.T) {
	router := newRouter(config.Config{CORSOrigins: []string{"http://board.example"}}, healthRoutes)

	allowed := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	allowed.Header.Set("Origin", "http://board.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, allowed)
	assert.Equal(t, "http://board.example", rec.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	denied.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, denied)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterWithoutCORS(t *testing.T) {
	router := newRouter(config.Config{}, healthRoutes)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://board.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
