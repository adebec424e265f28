package service

import (
	"context"
	"errors"
	"fmt"

	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users       UserStore
	collections CollectionStore
}

func NewUserService(users UserStore, collections CollectionStore) *UserService {
	return &UserService{users: users, collections: collections}
}

// Register creates a user with a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, nickname, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Nickname:     nickname,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login checks the password of the user with the given nickname or email.
func (s *UserService) Login(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

type Profile struct {
	User          *models.User
	SelectedCount int64
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	count, err := s.collections.Count(ctx, repository.Selected, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, SelectedCount: count}, nil
}
