package session

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/suggestion-board/board/types"
)

// CookieStore signs the whole session into an HS256 token kept in the cookie.
type CookieStore struct {
	secret []byte
	opts   Options
	now    func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Session types.Session `json:"sess"`
}

func NewCookieStore(secret string, opts Options) *CookieStore {
	return &CookieStore{
		secret: []byte(secret),
		opts:   opts.withDefaults(),
		now:    time.Now,
	}
}

func (s *CookieStore) Load(r *http.Request) (types.Session, error) {
	raw := s.opts.value(r)
	if raw == "" {
		return types.Session{}, nil
	}

	claims := sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		slog.DebugContext(r.Context(), "discarding session cookie", "error", err)
		return types.Session{}, nil
	}
	return claims.Session, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, _ *http.Request, sess types.Session) error {
	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TTL)),
		},
		Session: sess,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, s.opts.cookie(signed))
	return nil
}

func (s *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) error {
	http.SetCookie(w, s.opts.expired())
	return nil
}

func (s *CookieStore) Close() error { return nil }
