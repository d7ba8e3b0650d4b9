package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
)

// respondError maps a taxonomy error onto an HTTP response. Storage faults
// carry optional diagnostics in "details" but the wrapped cause is logged,
// never leaked verbatim when it might hold credential data; every other kind
// surfaces only its client-facing message.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unclassified error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := apperr.HTTPStatus(appErr.Kind)

	if appErr.Kind == apperr.KindStorage {
		h.log.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("storage fault")
		body := gin.H{"error": "database error"}
		if cause := appErr.Unwrap(); cause != nil {
			body["details"] = appErr.Message
		}
		c.JSON(status, body)
		return
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
