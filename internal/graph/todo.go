package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
)

func (b *builder) todoType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Todo",
		Description: "A task owned by a user.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Unique identifier of the todo.",
			},
			"userId": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Identifier of the owning user.",
			},
			"title": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Title of the task.",
			},
			"description": &graphql.Field{
				Type:        graphql.String,
				Description: "Detailed description of the task, if any.",
			},
			"isChecked": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "Whether the task is done.",
			},
			"createdAt": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.DateTime),
				Description: "Creation time, ISO 8601.",
			},
			"updatedAt": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.DateTime),
				Description: "Time of the last change, ISO 8601. Never before createdAt.",
			},
		},
	})
}

func (b *builder) todoMutations(fields graphql.Fields) {
	fields["createTodo"] = &graphql.Field{
		Type:        b.todo,
		Description: "Create a task for a user. Requires authentication.",
		Args: graphql.FieldConfigArgument{
			"userId": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Identifier of the owning user.",
			},
			"title": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Title of the new task.",
			},
			"description": &graphql.ArgumentConfig{
				Type:        graphql.String,
				Description: "Detailed description of the new task.",
			},
			"isChecked": &graphql.ArgumentConfig{
				Type:         graphql.Boolean,
				DefaultValue: false,
				Description:  "Whether the task starts out done.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if err := requireLoggedIn(p.Context); err != nil {
				return nil, err
			}

			userID, _ := p.Args["userId"].(string)
			title, _ := p.Args["title"].(string)
			description := optionalString(p.Args, "description")
			isChecked, _ := p.Args["isChecked"].(bool)

			todo, err := b.resolver.Todos.Create(userID, title, description, isChecked)
			if err != nil {
				return nil, wrapError("createTodo", err)
			}
			return todo, nil
		},
	}

	fields["updateTodo"] = &graphql.Field{
		Type:        b.todo,
		Description: "Change a task's title, description or state. Null arguments are left unchanged. Requires authentication.",
		Args: graphql.FieldConfigArgument{
			"todoId": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Identifier of the task to change.",
			},
			"title": &graphql.ArgumentConfig{
				Type:        graphql.String,
				Description: "New title.",
			},
			"description": &graphql.ArgumentConfig{
				Type:        graphql.String,
				Description: "New description.",
			},
			"isChecked": &graphql.ArgumentConfig{
				Type:        graphql.Boolean,
				Description: "New done state.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if err := requireLoggedIn(p.Context); err != nil {
				return nil, err
			}

			todoID, _ := p.Args["todoId"].(string)
			update := repository.TodoUpdate{
				Title:       optionalString(p.Args, "title"),
				Description: optionalString(p.Args, "description"),
				IsChecked:   optionalBool(p.Args, "isChecked"),
			}

			todo, err := b.resolver.Todos.Update(todoID, update)
			if err != nil {
				return nil, wrapError("updateTodo", err)
			}
			return todo, nil
		},
	}

	fields["deleteTodo"] = &graphql.Field{
		Type:        graphql.Boolean,
		Description: "Remove a task. Requires authentication.",
		Args: graphql.FieldConfigArgument{
			"todoId": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "Identifier of the task to delete.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if err := requireLoggedIn(p.Context); err != nil {
				return nil, err
			}

			todoID, _ := p.Args["todoId"].(string)

			err := b.resolver.Todos.Delete(todoID)
			if err != nil {
				return nil, wrapError("deleteTodo", err)
			}
			return true, nil
		},
	}
}
