package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/middleware"
	"personal-task-tracker/internal/voice"
	"personal-task-tracker/pkg/response"
)

// Parse godoc
// @Summary     Parse a voice transcript into a structured task
// @Description Converts a transcript into a task guess. Always succeeds for a
// @Description non-empty transcript: model failures degrade to a rule-based
// @Description extraction with low confidence.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseReq true "Transcript to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/voice/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		if err == voice.ErrEmptyTranscript {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.InternalError(c, err)
		return
	}

	// Audit is best effort. A failed insert never fails the parse response.
	if err := h.uc.RecordCommand(ctx, sc, result, true); err != nil {
		h.l.Warnf(ctx, "uc.RecordCommand: %v", err)
	}

	response.OK(c, h.newParseResp(result))
}

// History godoc
// @Summary     List recent voice commands
// @Description Returns the caller's recent voice commands, newest first.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Page size (default: 20, max: 100)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/voice/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
