package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/Arthur-Gab/graphql-task-api/internal/model"
	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
)

type TodoService struct {
	todoRepository repository.TodoRepository
}

func NewTodoService(todoRepository repository.TodoRepository) *TodoService {
	return &TodoService{todoRepository: todoRepository}
}

func (s *TodoService) Create(userID, title string, description *string, isChecked bool) (*model.Todo, error) {
	now := time.Now()
	todo := &model.Todo{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		IsChecked:   isChecked,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.todoRepository.Create(todo)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) ByUserID(userID string) ([]*model.Todo, error) {
	return s.todoRepository.ByUserID(userID)
}

// Update applies a partial field set. Nil fields are left unchanged; an
// all-nil update is rejected.
func (s *TodoService) Update(id string, update repository.TodoUpdate) (*model.Todo, error) {
	return s.todoRepository.Update(id, update)
}

func (s *TodoService) Delete(id string) error {
	return s.todoRepository.Delete(id)
}
