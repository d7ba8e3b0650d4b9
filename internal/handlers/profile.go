package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Profile proxies a Gravatar profile lookup for the given email. The raw
// upstream JSON is returned as-is.
func (h HandlerSet) Profile(c *gin.Context) {
	raw, err := h.profiles.Profile(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
