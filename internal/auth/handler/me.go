package handler

import (
	"net/http"

	"registrant-auth/internal/logger"
	"registrant-auth/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Me returns the registrant record of the authenticated caller.
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.GinIdentity(c)
	if !ok {
		abortJSON(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	reg, err := h.registrants.GetRegistrantByOsuID(c.Request.Context(), identity.OsuID)
	if err != nil {
		logger.Error("registrant lookup failed", map[string]any{
			"osu_id": identity.OsuID,
			"error":  err.Error(),
		})
		abortJSON(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Deleted between authentication and lookup
	if reg == nil {
		abortJSON(c, http.StatusNotFound, "registrant not found")
		return
	}

	c.JSON(http.StatusOK, reg)
}
