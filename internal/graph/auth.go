package graph

import (
	"github.com/graphql-go/graphql"
)

func (b *builder) authPayloadType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "AuthPayload",
		Description: "Result of a successful sign-in.",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Signed bearer token, valid for a limited time.",
			},
			"user": &graphql.Field{
				Type:        b.user,
				Description: "The authenticated user.",
			},
		},
	})
}

func (b *builder) authMutations(fields graphql.Fields) {
	// The operation name predates this revision and is kept for client
	// compatibility.
	fields["sigIn"] = &graphql.Field{
		Type:        b.authPayload,
		Description: "Authenticate with email and password.",
		Args: graphql.FieldConfigArgument{
			"email": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Login email of the user.",
			},
			"password": &graphql.ArgumentConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Password of the user.",
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			email, _ := p.Args["email"].(string)
			password, _ := p.Args["password"].(string)

			payload, err := b.resolver.Auth.SignIn(email, password)
			if err != nil {
				return nil, wrapError("sigIn", err)
			}
			return payload, nil
		},
	}
}
