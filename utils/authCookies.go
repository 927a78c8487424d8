package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

const RefreshTokenCookie = "refreshToken"

// SetRefreshCookie stores the refresh token in an http-only cookie scoped to the refresh route.
func SetRefreshCookie(c *gin.Context, refreshToken string, expiry time.Duration) {
	c.SetCookie(RefreshTokenCookie, refreshToken, int(expiry.Seconds()), "/api/auth", "", secureCookies(), true)
}

func ClearRefreshCookie(c *gin.Context) {
	c.SetCookie(RefreshTokenCookie, "", -1, "/api/auth", "", secureCookies(), true)
}

func secureCookies() bool {
	return gin.Mode() != gin.DebugMode && gin.Mode() != gin.TestMode
}
