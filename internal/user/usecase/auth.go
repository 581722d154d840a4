package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/user"
	repo "personal-task-tracker/internal/user/repository"
	"personal-task-tracker/pkg/scope"
)

// Register creates a new account after checking username uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register hash: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Username:     username,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.withToken(ctx, created)
}

// Login verifies credentials. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))

	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if found.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.withToken(ctx, found)
}

// Me returns the account behind the given scope.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return model.User{}, err
	}
	if found.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func (uc *implUseCase) withToken(ctx context.Context, u model.User) (user.AuthOutput, error) {
	token, err := uc.jwtManager.Issue(scope.Payload{
		UserID:   u.ID,
		Username: u.Username,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.withToken Issue: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Token: token}, nil
}
