package user

import "personal-task-tracker/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput is the result of a successful register or login.
type AuthOutput struct {
	User  model.User
	Token string
}
