package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write([]byte("API Working")); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("error writing response")
	}
}

// SetupRootRoute registers the root and health routes.
func SetupRootRoute(router *gin.Engine, ping func(context.Context) error) {
	router.GET("/", rootHandler)
	router.GET("/healthz", func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})
}
