package usecase

import (
	"context"
	"testing"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/user"
	repo "personal-task-tracker/internal/user/repository"
	"personal-task-tracker/pkg/scope"
)

type mockUserRepository struct {
	byUsername map[string]model.User
	byID       map[string]model.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		byUsername: make(map[string]model.User),
		byID:       make(map[string]model.User),
	}
}

func (m *mockUserRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u := model.User{
		ID:           "user-" + opt.Username,
		Username:     opt.Username,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
	}
	m.byUsername[u.Username] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *mockUserRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if opt.ID != "" {
		return m.byID[opt.ID], nil
	}
	return m.byUsername[opt.Username], nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any) {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (nopLogger) Warn(ctx context.Context, args ...any) {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Error(ctx context.Context, args ...any) {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any) {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any) {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any) {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newAuthUseCase(t *testing.T) (*implUseCase, scope.Manager) {
	t.Helper()
	manager, err := scope.NewManager(scope.Config{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("scope.NewManager: %v", err)
	}
	return New(newMockUserRepository(), manager, nopLogger{}), manager
}

func TestRegisterAndLogin(t *testing.T) {
	uc, manager := newAuthUseCase(t)

	registered, err := uc.Register(context.Background(), user.RegisterInput{
		Username: "  Alice  ",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.User.Username != "alice" {
		t.Errorf("Username = %q, want normalized lowercase", registered.User.Username)
	}
	if registered.User.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if registered.Token == "" {
		t.Error("Register returned no token")
	}

	payload, err := manager.Verify(registered.Token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if payload.UserID != registered.User.ID {
		t.Errorf("token UserID = %q, want %q", payload.UserID, registered.User.ID)
	}

	loggedIn, err := uc.Login(context.Background(), user.LoginInput{
		Username: "alice",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("Login user = %q, want %q", loggedIn.User.ID, registered.User.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	input := user.RegisterInput{Username: "bob", Password: "pw1234"}
	if _, err := uc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := uc.Register(context.Background(), input); err != user.ErrUsernameTaken {
		t.Errorf("second Register err = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginRejections(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	if _, err := uc.Register(context.Background(), user.RegisterInput{Username: "carol", Password: "right-pw"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name  string
		input user.LoginInput
	}{
		{"wrong password", user.LoginInput{Username: "carol", Password: "wrong-pw"}},
		{"unknown user", user.LoginInput{Username: "nobody", Password: "right-pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(context.Background(), tt.input); err != user.ErrInvalidCredentials {
				t.Errorf("Login err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestMe(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	registered, err := uc.Register(context.Background(), user.RegisterInput{Username: "dave", Password: "pw1234"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	found, err := uc.Me(context.Background(), model.Scope{UserID: registered.User.ID})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if found.Username != "dave" {
		t.Errorf("Username = %q, want dave", found.Username)
	}

	if _, err := uc.Me(context.Background(), model.Scope{UserID: "missing"}); err != user.ErrUserNotFound {
		t.Errorf("Me err = %v, want ErrUserNotFound", err)
	}
}
