package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the GraphQL schema served by the application. The type and
// operation shapes are the external contract; changing a field here is a
// breaking API change.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		myTodos: [Todo!]!
		getTodo(id: ID!): Todo!
	}

	type Mutation {
		signUp(input: SignUpInput): AuthUser!
		signIn(input: SignInInput): AuthUser!
		createToDo(input: CreateTodoInput): Todo!
		updateToDo(id: ID!, input: UpdateTodoInput): Todo!
		deleteToDo(id: ID!): Boolean
	}

	type User {
		id: ID!
		name: String!
		email: String!
		avatar: String
	}

	type Todo {
		id: ID!
		title: String!
		description: String
		dueDate: String
		priority: Int
		categoryId: String
		isDone: Boolean!
		ownerId: ID!
		owner: User!
	}

	type AuthUser {
		token: String!
		user: User!
	}

	input SignUpInput {
		name: String!
		email: String!
		password: String!
		avatar: String
	}

	input SignInInput {
		email: String!
		password: String!
	}

	input CreateTodoInput {
		title: String!
		description: String
		dueDate: String
		priority: Int
		categoryId: String
		isDone: Boolean!
	}

	input UpdateTodoInput {
		title: String
		description: String
		dueDate: String
		priority: Int
		categoryId: String
		isDone: Boolean
	}
`

// ParseSchema parses the schema against the given root resolver. Output
// types are resolved through their exported struct fields.
func ParseSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, resolver, graphql.UseFieldResolvers())
}
