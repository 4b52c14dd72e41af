// Package session keeps the per-visitor record between requests, either
// signed into the cookie itself or held in redis behind an opaque id.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/suggestion-board/board/config"
	"github.com/suggestion-board/board/types"
)

const defaultTTL = 24 * time.Hour

// Store loads and persists sessions. Load never fails for a missing, expired
// or tampered cookie; it returns the anonymous zero session instead.
type Store interface {
	Load(r *http.Request) (types.Session, error)
	Save(w http.ResponseWriter, r *http.Request, sess types.Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
	Close() error
}

// New builds the store selected by cfg.Session.Backend.
func New(ctx context.Context, cfg config.Config) (Store, error) {
	opts := Options{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	}

	switch cfg.Session.Backend {
	case "", "cookie":
		if strings.TrimSpace(cfg.Session.Secret) == "" {
			return nil, errors.New("SESSION_SECRET is required for the cookie session backend")
		}
		return NewCookieStore(cfg.Session.Secret, opts), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisStore(client, opts), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// Options controls the session cookie. Zero values fall back to the
// "board_session" name and a 24h lifetime.
type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

func (o Options) withDefaults() Options {
	if o.CookieName == "" {
		o.CookieName = "board_session"
	}
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	return o
}

func (o Options) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     o.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(o.TTL / time.Second),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (o Options) expired() *http.Cookie {
	c := o.cookie("")
	c.MaxAge = -1
	return c
}

func (o Options) value(r *http.Request) string {
	c, err := r.Cookie(o.CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
