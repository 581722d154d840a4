package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/middleware"
	"personal-task-tracker/internal/user"
	"personal-task-tracker/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates an account and returns it with a signed access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - username already taken"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		if err == user.ErrUsernameTaken {
			c.JSON(http.StatusConflict, response.Resp{
				ErrorCode: http.StatusConflict,
				Message:   err.Error(),
			})
			return
		}
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns the account with a signed
// @Description access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		if err == user.ErrInvalidCredentials {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Me godoc
// @Summary     Get the current account
// @Description Returns the account behind the presented token.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	found, err := h.uc.Me(ctx, sc)
	if err != nil {
		if err == user.ErrUserNotFound {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newUserResp(found))
}
