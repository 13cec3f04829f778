package http

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
	"task-capture/internal/review"
	"task-capture/pkg/response"
)

// Detail godoc
// @Summary     Get a review session
// @Description Returns the candidates still waiting for review, in ranked order.
// @Tags        Review
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reviews/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.Get(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Edit godoc
// @Summary     Edit a candidate
// @Description Replaces the candidate at index. The title must not be blank.
// @Tags        Review
// @Accept      json
// @Produce     json
// @Param       id    path string  true "Session ID"
// @Param       index path int     true "Candidate index"
// @Param       body  body editReq true "Edited candidate"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reviews/{id}/candidates/{index} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	current, err := h.uc.Get(ctx, sc, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if req.Index >= len(current.Candidates) {
		response.Error(c, h.mapError(review.ErrIndexOutOfRange))
		return
	}

	sess, err := h.uc.Edit(ctx, sc, req.toInput(current.Candidates[req.Index]))
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Remove godoc
// @Summary     Remove a candidate
// @Description Drops the candidate at index. Later candidates move up by one.
// @Tags        Review
// @Produce     json
// @Param       id    path string true "Session ID"
// @Param       index path int    true "Candidate index"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reviews/{id}/candidates/{index} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	uri, err := h.processCandidateURI(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.uc.Remove(ctx, middleware.GetScope(c), review.RemoveInput{
		SessionID: uri.SessionID,
		Index:     uri.Index,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Accept godoc
// @Summary     Accept a candidate
// @Description Stores the candidate at index as a task and schedules a reminder
// @Description when it is dated. The candidate leaves the session.
// @Tags        Review
// @Produce     json
// @Param       id    path string true "Session ID"
// @Param       index path int    true "Candidate index"
// @Success     200 {object} acceptResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/reviews/{id}/candidates/{index}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	uri, err := h.processCandidateURI(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Accept(ctx, middleware.GetScope(c), review.AcceptInput{
		SessionID: uri.SessionID,
		Index:     uri.Index,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAcceptResp(out))
}
