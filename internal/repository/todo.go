package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Arthur-Gab/graphql-task-api/internal/model"
)

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrUserRefNotFound = errors.New("referenced user does not exist")
	ErrEmptyUpdate     = errors.New("no fields to update")
)

// TodoUpdate is a partial field set for Update. A nil field means "leave
// unchanged", not "clear".
type TodoUpdate struct {
	Title       *string
	Description *string
	IsChecked   *bool
}

func (u TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsChecked == nil
}

type TodoRepository interface {
	Create(todo *model.Todo) error
	ByID(id string) (*model.Todo, error)
	ByUserID(userID string) ([]*model.Todo, error)
	Update(id string, update TodoUpdate) (*model.Todo, error)
	Delete(id string) error
}

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) TodoRepository {
	return &todoRepository{db: db}
}

// isForeignKeyViolation matches the FK error text of both SQLite and PostgreSQL.
func isForeignKeyViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "violates foreign key constraint")
}

func (r *todoRepository) Create(todo *model.Todo) error {
	query := `INSERT INTO todos (id, user_id, title, description, is_checked, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		todo.ID,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.IsChecked,
		todo.CreatedAt,
		todo.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserRefNotFound
		}
		return err
	}

	return nil
}

func (r *todoRepository) ByID(id string) (*model.Todo, error) {
	todo := &model.Todo{}
	query := `SELECT * FROM todos WHERE id = $1`

	err := r.db.Get(todo, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrTodoNotFound
	}

	return todo, err
}

func (r *todoRepository) ByUserID(userID string) ([]*model.Todo, error) {
	var todos []*model.Todo
	query := `SELECT * FROM todos WHERE user_id = $1`

	err := r.db.Select(&todos, query, userID)
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// Update applies the non-nil fields of update and advances updated_at.
// An empty update is rejected before touching the database.
func (r *todoRepository) Update(id string, update TodoUpdate) (*model.Todo, error) {
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	var sets []string
	var args []any

	next := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Title != nil {
		sets = append(sets, "title = "+next(*update.Title))
	}
	if update.Description != nil {
		sets = append(sets, "description = "+next(*update.Description))
	}
	if update.IsChecked != nil {
		sets = append(sets, "is_checked = "+next(*update.IsChecked))
	}
	sets = append(sets, "updated_at = "+next(time.Now()))

	query := `UPDATE todos SET ` + strings.Join(sets, ", ") + ` WHERE id = ` + next(id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrTodoNotFound
	}

	return r.ByID(id)
}

func (r *todoRepository) Delete(id string) error {
	query := `DELETE FROM todos WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}
