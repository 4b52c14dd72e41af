package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/suggestion-board/board/internal/store"
	"github.com/suggestion-board/board/types"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByAlias(ctx context.Context, alias string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService handles registration and login.
type UserService struct {
	repo      UserRepository
	activity  *ActivityRecorder
	validator *formValidator
	hashCost  int
}

func NewUserService(repo UserRepository, activity *ActivityRecorder) *UserService {
	return &UserService{
		repo:      repo,
		activity:  activity,
		validator: defaultValidator,
		hashCost:  bcrypt.DefaultCost,
	}
}

// ValidateRegistration returns every message for the rules the form breaks.
// The error is reserved for lookup failures.
func (s *UserService) ValidateRegistration(ctx context.Context, req RegisterRequest) ([]string, error) {
	req.Email = normalizeEmail(req.Email)
	messages := s.validator.check(s.validator.identityRules(req)...)

	aliasTaken, err := s.exists(ctx, req.Alias, s.repo.GetByAlias)
	if err != nil {
		return nil, fmt.Errorf("check alias: %w", err)
	}
	if aliasTaken {
		messages = append(messages, MsgAliasTaken)
	}

	emailTaken, err := s.exists(ctx, req.Email, s.repo.GetByEmail)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		messages = append(messages, MsgEmailTaken)
	}

	messages = append(messages, s.validator.check(s.validator.passwordRules(req)...)...)
	return messages, nil
}

func (s *UserService) exists(ctx context.Context, value string, lookup func(context.Context, string) (types.User, error)) (bool, error) {
	if value == "" {
		return false, nil
	}
	_, err := lookup(ctx, value)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Register stores a new user with a hashed password. Callers validate first;
// a unique index collision surfaces as store.ErrConflict.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (types.User, error) {
	req.Email = normalizeEmail(req.Email)
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, types.User{
		Name:         req.Name,
		Alias:        req.Alias,
		Email:        req.Email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return types.User{}, err
	}

	s.activity.Record(ctx, types.ActivityUserRegistered, user.ID, 0)
	return user, nil
}

// Login verifies the credentials and returns a session for the user.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (types.Session, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Session{}, ErrInvalidCredentials
		}
		return types.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return types.Session{}, ErrInvalidCredentials
	}

	return types.Session{
		UserID: user.ID,
		Name:   user.Name,
		Alias:  user.Alias,
		Email:  user.Email,
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByAlias(ctx context.Context, alias string) (types.User, error) {
	return s.repo.GetByAlias(ctx, alias)
}
