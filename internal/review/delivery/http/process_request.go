package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processCandidateURI reads the session id and candidate index path params.
func (h *handler) processCandidateURI(c *gin.Context) (candidateURI, error) {
	uri := candidateURI{SessionID: c.Param("id")}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return uri, errInvalidIndex
	}
	uri.Index = index
	return uri, nil
}

// processEditReq binds the replacement candidate body and its URI params.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	uri, err := h.processCandidateURI(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.candidateURI = uri
	return req, req.validate()
}
