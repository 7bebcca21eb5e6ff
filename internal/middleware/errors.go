package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketsight/marketsight/internal/domain/dto"
	"github.com/marketsight/marketsight/internal/logger"
)

// ErrorHandler converts errors attached to the gin context (via c.Error) into
// a single standardized JSON response after the handler chain has run.
//
// Behavior:
//   - Runs the downstream handlers first.
//   - If any errors were collected and no response was written with a
//     non-error status, responds 500 with the last error's message.
//   - Logs every collected error with the request id for diagnosis.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	rid, _ := c.Get(RequestIDKey)
	for _, ge := range c.Errors {
		logger.L().Error().
			Str("request_id", toString(rid)).
			Str("path", c.Request.URL.Path).
			Err(ge.Err).
			Msg("request_error")
	}

	if !c.Writer.Written() {
		last := c.Errors.Last()
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
	}
}

// AbortWithError writes a standardized error response with the given status
// and stops the handler chain. Helper for handlers that want logging and the
// dto.ErrorResponse shape in one call.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
