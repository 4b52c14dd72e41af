package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/suggestion-board/board/types"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in redis as JSON, keyed by a random id held in
// the cookie. Every save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	opts   Options
}

func NewRedisStore(client *redis.Client, opts Options) *RedisStore {
	return &RedisStore{client: client, opts: opts.withDefaults()}
}

func (s *RedisStore) Load(r *http.Request) (types.Session, error) {
	id := s.id(r)
	if id == "" {
		return types.Session{}, nil
	}

	data, err := s.client.Get(r.Context(), redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return types.Session{}, nil
	}
	if err != nil {
		return types.Session{}, fmt.Errorf("load session: %w", err)
	}

	var sess types.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return types.Session{}, nil
	}
	return sess, nil
}

func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, sess types.Session) error {
	id := s.id(r)
	if id == "" {
		id = uuid.NewString()
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(r.Context(), redisKeyPrefix+id, data, s.opts.TTL).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	http.SetCookie(w, s.opts.cookie(id))
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, s.opts.expired())
	id := s.id(r)
	if id == "" {
		return nil
	}
	if err := s.client.Del(r.Context(), redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// id returns the session id from the cookie, ignoring anything that is not
// one we could have issued.
func (s *RedisStore) id(r *http.Request) string {
	raw := s.opts.value(r)
	if _, err := uuid.Parse(raw); err != nil {
		return ""
	}
	return raw
}
