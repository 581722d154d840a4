package http

import (
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newAuthResp(output user.AuthOutput) authResp {
	return authResp{
		User:  newUserResp(output.User),
		Token: output.Token,
	}
}
