package handler

import (
	"errors"
	"fmt"
	"net/http"

	"registrant-auth/internal/auth/credentials"

	"github.com/gin-gonic/gin"
)

type createSessionRequest struct {
	OsuID int64  `form:"osuId" binding:"required"`
	Hash  string `form:"hash"`
}

// CreateSession issues a session for a registrant. It is meant for the
// identity-linking flow, which proves itself with the generation phrase.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortJSON(c, http.StatusBadRequest, "invalid request")
		return
	}

	sess, err := h.issuer.Issue(c.Request.Context(), req.OsuID, req.Hash)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrInvalidCredentials):
			abortJSON(c, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, credentials.ErrConfigurationMissing):
			abortJSON(c, http.StatusInternalServerError, credentials.ErrConfigurationMissing.Error())
		default:
			abortJSON(c, http.StatusInternalServerError,
				fmt.Sprintf("failed to create session for user %d (internal error occurred)", req.OsuID))
		}
		return
	}

	c.JSON(http.StatusOK, sess)
}
