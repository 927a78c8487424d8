package handlers

import (
	"MediCore/middlewares"
	"MediCore/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	tokens *utils.TokenManager
}

func NewAuthHandler(tokens *utils.TokenManager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken exchanges the refresh token from the body or cookie for a new access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if c.Request.ContentLength > 0 {
		if !bind(c, &req) {
			return
		}
	}
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(utils.RefreshTokenCookie); err == nil {
			req.RefreshToken = cookie
		}
	}
	if req.RefreshToken == "" {
		middlewares.HttpError(c, utils.Unauthorized("Refresh token is required"))
		return
	}

	access, claims, err := h.tokens.Refresh(req.RefreshToken)
	if err != nil {
		utils.ClearRefreshCookie(c)
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"token": access, "role": claims.Role})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearRefreshCookie(c)
	middlewares.RespondMessage(c, "Logged out", http.StatusOK)
}
