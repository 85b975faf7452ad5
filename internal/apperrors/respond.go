package apperrors

import (
	"net/http"

	"artworld-app/internal/logger"

	"github.com/gin-gonic/gin"
)

// Respond writes err as the standard JSON failure shape:
// {success:false, message, code, details?}. Unexpected errors are logged with
// request context and surfaced as a generic retry-later message.
func Respond(c *gin.Context, err error) {
	appErr := As(err)
	if appErr == nil {
		appErr = Internal(err)
	}

	if appErr.Code == CodeInternalError {
		logger.Error("internal error",
			"path", c.FullPath(),
			"actor_id", c.GetUint("user_id"),
			"error", err.Error(),
		)
	}

	body := gin.H{
		"success": false,
		"message": appErr.Message,
		"code":    appErr.Code,
	}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, body)
}
