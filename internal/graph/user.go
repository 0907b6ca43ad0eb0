package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Arthur-Gab/graphql-task-api/internal/model"
)

// userType exposes a user without its password column. Exposing the hash was
// a defect in an earlier schema revision; the field simply does not exist
// here.
func (b *builder) userType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A registered account.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Unique identifier of the user.",
			},
			"email": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Login email, unique across users.",
			},
			"username": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Display name.",
			},
			"avatarUrl": &graphql.Field{
				Type:        graphql.String,
				Description: "URL of the user's avatar, if set.",
			},
		},
	})
}

func (b *builder) userQueries(fields graphql.Fields) {
	// Development helper: lists every registered user.
	fields["users"] = &graphql.Field{
		Type:        graphql.NewList(b.user),
		Description: "All registered users, in database order.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			users, err := b.resolver.Users.All()
			if err != nil {
				return nil, wrapError("users", err)
			}
			return users, nil
		},
	}

	fields["user"] = &graphql.Field{
		Type:        b.user,
		Description: "Look up a single user by ID.",
		Args: graphql.FieldConfigArgument{
			"userId": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Unique identifier of the user.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, _ := p.Args["userId"].(string)

			user, err := b.resolver.Users.ByID(userID)
			if err != nil {
				return nil, wrapError("user", err)
			}
			return user, nil
		},
	}
}

func (b *builder) userMutations(fields graphql.Fields) {
	fields["createUser"] = &graphql.Field{
		Type:        b.user,
		Description: "Register a new user. Email must be unique; the password is stored as a salted hash.",
		Args: graphql.FieldConfigArgument{
			"email": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Login email of the new user.",
			},
			"password": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Password of the new user.",
			},
			"username": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Display name of the new user.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			email, _ := p.Args["email"].(string)
			password, _ := p.Args["password"].(string)
			username, _ := p.Args["username"].(string)

			user, err := b.resolver.Users.Create(email, password, username)
			if err != nil {
				return nil, wrapError("createUser", err)
			}
			return user, nil
		},
	}

	fields["deleteUser"] = &graphql.Field{
		Type:        graphql.Boolean,
		Description: "Remove a user. Owned todos are removed with it.",
		Args: graphql.FieldConfigArgument{
			"userId": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Unique identifier of the user.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, _ := p.Args["userId"].(string)

			err := b.resolver.Users.Delete(userID)
			if err != nil {
				return nil, wrapError("deleteUser", err)
			}
			return true, nil
		},
	}

	fields["updateUsername"] = &graphql.Field{
		Type:        b.user,
		Description: "Change a user's display name.",
		Args: graphql.FieldConfigArgument{
			"userId": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Unique identifier of the user.",
			},
			"username": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "New display name.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, _ := p.Args["userId"].(string)
			username, _ := p.Args["username"].(string)

			user, err := b.resolver.Users.UpdateUsername(userID, username)
			if err != nil {
				return nil, wrapError("updateUsername", err)
			}
			return user, nil
		},
	}
}

func (b *builder) resolveUserTodoList(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := p.Source.(*model.User)
	if !ok {
		return nil, errInternal
	}

	todos, err := b.resolver.Todos.ByUserID(parent.ID)
	if err != nil {
		return nil, wrapError("User.todoList", err)
	}
	return todos, nil
}
