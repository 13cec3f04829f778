package http

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
	"task-capture/internal/model"
	"task-capture/internal/review"
	"task-capture/pkg/response"
)

// Extract godoc
// @Summary     Extract task candidates
// @Description Scans shared chat text and returns ranked task candidates. When any
// @Description candidate is found a review session is opened and its id returned.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Shared content"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Failure     503  {object} response.Resp "Time budget exceeded"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	var sessionID string
	if h.review != nil && len(output.Candidates) > 0 {
		sess, err := h.review.Open(ctx, sc, review.OpenInput{
			Source:     model.SourceChat,
			Candidates: output.Candidates,
		})
		if err != nil {
			// The candidates are still useful without a session.
			h.l.Warnf(ctx, "review.Open: %v", err)
		} else {
			sessionID = sess.ID
		}
	}

	response.OK(c, h.newExtractResp(output, sessionID))
}

// Voice godoc
// @Summary     Parse a voice transcript
// @Description Returns the single best interpretation of a transcribed utterance.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body voiceReq true "Transcript"
// @Success     200  {object} voiceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Time budget exceeded"
// @Router      /api/v1/voice [POST]
func (h *handler) Voice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseVoice(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseVoice: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newVoiceResp(output))
}

// Resolve godoc
// @Summary     Resolve a date/time fragment
// @Description Resolves a natural-language date or time. found=false means the
// @Description fragment names no date and the caller should ask for one.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Fragment"
// @Success     200  {object} resolveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResolveResp(output))
}
