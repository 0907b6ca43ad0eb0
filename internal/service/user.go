package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Arthur-Gab/graphql-task-api/internal/model"
	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
	"github.com/Arthur-Gab/graphql-task-api/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
	authService    *AuthService
}

func NewUserService(userRepository repository.UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepository: userRepository,
		authService:    authService,
	}
}

// Create validates input, hashes the password and inserts the row. The
// returned user is sanitized.
func (s *UserService) Create(email, password, username string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: hash,
		Username: username,
	}

	err = s.userRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

func (s *UserService) ByID(id string) (*model.User, error) {
	user, err := s.userRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

func (s *UserService) All() ([]*model.User, error) {
	users, err := s.userRepository.All()
	if err != nil {
		return nil, err
	}

	for i, user := range users {
		users[i] = user.Sanitized()
	}

	return users, nil
}

func (s *UserService) UpdateUsername(id, username string) (*model.User, error) {
	username = strings.TrimSpace(username)

	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	err = s.userRepository.UpdateUsername(id, username)
	if err != nil {
		return nil, err
	}

	return s.ByID(id)
}

// Delete removes the user; owned todos go with it via the cascading
// foreign key.
func (s *UserService) Delete(id string) error {
	return s.userRepository.Delete(id)
}
