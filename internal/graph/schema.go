package graph

import (
	"context"

	"github.com/graphql-go/graphql"

	"github.com/Arthur-Gab/graphql-task-api/internal/ctxkeys"
	"github.com/Arthur-Gab/graphql-task-api/internal/service"
)

// Resolver bundles the per-request collaborators every field resolver
// delegates to. It is built once at startup and injected into the schema;
// no package-level state.
type Resolver struct {
	Users *service.UserService
	Todos *service.TodoService
	Auth  *service.AuthService
}

// builder assembles the object types and root fields. Types are created once
// and shared so cross-references (User.todoList -> Todo) resolve to the same
// instances.
type builder struct {
	resolver *Resolver

	user        *graphql.Object
	todo        *graphql.Object
	authPayload *graphql.Object
}

// NewSchema builds the executable schema around the given resolver.
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	b := &builder{resolver: resolver}

	b.todo = b.todoType()
	b.user = b.userType()
	b.authPayload = b.authPayloadType()

	// User.todoList is attached after both types exist to break the
	// User <-> Todo reference cycle.
	b.user.AddFieldConfig("todoList", &graphql.Field{
		Type:        graphql.NewNonNull(graphql.NewList(b.todo)),
		Description: "Todos owned by this user.",
		Resolve:     b.resolveUserTodoList,
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: b.queryFields(),
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: b.mutationFields(),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func (b *builder) queryFields() graphql.Fields {
	fields := graphql.Fields{}
	b.userQueries(fields)
	return fields
}

func (b *builder) mutationFields() graphql.Fields {
	fields := graphql.Fields{}
	b.userMutations(fields)
	b.todoMutations(fields)
	b.authMutations(fields)
	return fields
}

// requireLoggedIn rejects the request before the resolver body runs when the
// isUserLoggedIn scope is not granted.
func requireLoggedIn(ctx context.Context) error {
	if !ctxkeys.IsUserLoggedIn(ctx) {
		return errForbidden
	}
	return nil
}

// optionalString reads an optional string argument. Absent and explicit-null
// arguments are both reported as nil.
func optionalString(args map[string]interface{}, name string) *string {
	v, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

// optionalBool reads an optional boolean argument, nil when absent or null.
func optionalBool(args map[string]interface{}, name string) *bool {
	v, ok := args[name].(bool)
	if !ok {
		return nil
	}
	return &v
}
