package user

import (
	"context"

	"personal-task-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates a new account and returns it with a signed token.
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)

	// Login verifies credentials and returns the account with a signed token.
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)

	// Me returns the account behind the given scope.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
