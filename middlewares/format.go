package middlewares

import (
	"net/http"

	"MediCore/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RespondJSON writes a successful response. data is merged into the envelope.
func RespondJSON(c *gin.Context, data gin.H, status int) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// RespondMessage writes a successful response carrying only a message.
func RespondMessage(c *gin.Context, message string, status int) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// HttpError maps err to its status code and writes the failure envelope.
// Unclassified errors are logged and reported with a generic message.
func HttpError(c *gin.Context, err error) {
	status := utils.StatusOf(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(status, gin.H{"success": false, "message": utils.PublicMessage(err)})
}

// BadRequest reports a malformed request body.
func BadRequest(c *gin.Context, err error) {
	HttpError(c, utils.Validation("Invalid request body: %v", err))
}
