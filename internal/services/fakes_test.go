package services

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/suggestion-board/board/internal/store"
	"github.com/suggestion-board/board/types"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockUserRepository) GetByAlias(ctx context.Context, alias string) (types.User, error) {
	args := m.Called(ctx, alias)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]types.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(types.User), args.Error(1)
}

// MockPublisher is a mock implementation of Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	args := m.Called(ctx, channel, data, attrs)
	return args.String(0), args.Error(1)
}

// MockObjectWriter is a mock implementation of ObjectWriter.
type MockObjectWriter struct {
	mock.Mock
	body []byte
}

func (m *MockObjectWriter) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	m.body, _ = io.ReadAll(r)
	args := m.Called(ctx, key, size, contentType)
	return args.Error(0)
}

// memBoard is an in-memory board used where behaviour over real data matters
// more than call expectations.
type memBoard struct {
	mu          sync.Mutex
	users       []types.User
	suggestions []types.Suggestion
	likes       []types.Like
	nextID      int
}

func newMemBoard() *memBoard {
	return &memBoard{nextID: 100}
}

type memUsers struct{ b *memBoard }
type memSuggestions struct{ b *memBoard }
type memLikes struct{ b *memBoard }

func (r memUsers) find(match func(types.User) bool) (types.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, u := range r.b.users {
		if match(u) {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r memUsers) GetByID(_ context.Context, id int) (types.User, error) {
	return r.find(func(u types.User) bool { return u.ID == id })
}

func (r memUsers) GetByAlias(_ context.Context, alias string) (types.User, error) {
	return r.find(func(u types.User) bool { return u.Alias == alias })
}

func (r memUsers) GetByEmail(_ context.Context, email string) (types.User, error) {
	return r.find(func(u types.User) bool { return u.Email == email })
}

func (r memUsers) List(_ context.Context) ([]types.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return append([]types.User(nil), r.b.users...), nil
}

func (r memUsers) Create(_ context.Context, user types.User) (types.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, u := range r.b.users {
		if u.Alias == user.Alias || u.Email == user.Email {
			return types.User{}, store.ErrConflict
		}
	}
	r.b.nextID++
	user.ID = r.b.nextID
	r.b.users = append(r.b.users, user)
	return user, nil
}

func (r memSuggestions) Get(_ context.Context, id int) (types.Suggestion, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, s := range r.b.suggestions {
		if s.ID == id {
			return s, nil
		}
	}
	return types.Suggestion{}, store.ErrNotFound
}

func (r memSuggestions) ListNewestFirst(_ context.Context) ([]types.Suggestion, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	out := append([]types.Suggestion(nil), r.b.suggestions...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memSuggestions) CountByAuthor(_ context.Context, authorID int) (int, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	total := 0
	for _, s := range r.b.suggestions {
		if s.AuthorID == authorID {
			total++
		}
	}
	return total, nil
}

func (r memSuggestions) Create(_ context.Context, suggestion types.Suggestion) (types.Suggestion, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.nextID++
	suggestion.ID = r.b.nextID
	r.b.suggestions = append(r.b.suggestions, suggestion)
	return suggestion, nil
}

func (r memSuggestions) UpdateText(_ context.Context, id int, text string) (types.Suggestion, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for i := range r.b.suggestions {
		if r.b.suggestions[i].ID == id {
			r.b.suggestions[i].Text = text
			return r.b.suggestions[i], nil
		}
	}
	return types.Suggestion{}, store.ErrNotFound
}

func (r memSuggestions) Delete(_ context.Context, id int) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for i := range r.b.suggestions {
		if r.b.suggestions[i].ID == id {
			r.b.suggestions = append(r.b.suggestions[:i], r.b.suggestions[i+1:]...)
			kept := r.b.likes[:0]
			for _, l := range r.b.likes {
				if l.SuggestionID != id {
					kept = append(kept, l)
				}
			}
			r.b.likes = kept
			return nil
		}
	}
	return store.ErrNotFound
}

func (r memLikes) Add(_ context.Context, userID, suggestionID int) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, l := range r.b.likes {
		if l.UserID == userID && l.SuggestionID == suggestionID {
			return false, nil
		}
	}
	r.b.likes = append(r.b.likes, types.Like{UserID: userID, SuggestionID: suggestionID})
	return true, nil
}

func (r memLikes) List(_ context.Context) ([]types.Like, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return append([]types.Like(nil), r.b.likes...), nil
}

func (r memLikes) CountByUser(_ context.Context, userID int) (int, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	total := 0
	for _, l := range r.b.likes {
		if l.UserID == userID {
			total++
		}
	}
	return total, nil
}

func (r memLikes) Likers(ctx context.Context, suggestionID int) ([]types.User, error) {
	likes, _ := r.List(ctx)
	var users []types.User
	for _, l := range likes {
		if l.SuggestionID != suggestionID {
			continue
		}
		u, err := memUsers{r.b}.GetByID(ctx, l.UserID)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
