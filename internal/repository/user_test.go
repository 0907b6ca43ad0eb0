package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arthur-Gab/graphql-task-api/internal/model"
	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
	"github.com/Arthur-Gab/graphql-task-api/internal/testutil"
)

func newUser(id, email string) *model.User {
	return &model.User{
		ID:       id,
		Email:    email,
		Password: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Username: "gopher",
	}
}

func TestUserRepository_CreateAndFetch(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)

	user := newUser("u1", "one@example.com")
	require.NoError(t, repo.Create(user))

	byID, err := repo.ByID("u1")
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.Username, byID.Username)
	assert.Nil(t, byID.AvatarURL)

	byEmail, err := repo.ByEmail("one@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(newUser("u1", "dup@example.com")))

	err := repo.Create(newUser("u2", "dup@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)

	_, err := repo.ByID("missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.ByEmail("missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.UpdateUsername("missing", "newname")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Delete("missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateUsername(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(newUser("u1", "one@example.com")))
	require.NoError(t, repo.UpdateUsername("u1", "renamed"))

	user, err := repo.ByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", user.Username)
}

func TestUserRepository_All(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)

	users, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, repo.Create(newUser("u1", "one@example.com")))
	require.NoError(t, repo.Create(newUser("u2", "two@example.com")))

	users, err = repo.All()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_DeleteCascadesTodos(t *testing.T) {
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	todos := repository.NewTodoRepository(db)

	require.NoError(t, users.Create(newUser("u1", "one@example.com")))
	require.NoError(t, todos.Create(testTodo("t1", "u1")))

	require.NoError(t, users.Delete("u1"))

	_, err := todos.ByID("t1")
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
}
