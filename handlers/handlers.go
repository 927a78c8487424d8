package handlers

import (
	"MediCore/middlewares"
	"MediCore/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bind decodes the JSON body into dest and reports a 400 on failure.
func bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		middlewares.BadRequest(c, err)
		return false
	}
	return true
}

// issueTokens signs a token pair for the identity, sets the refresh cookie
// and returns the fields every login response carries.
func issueTokens(c *gin.Context, tm *utils.TokenManager, id, email, role string) (gin.H, bool) {
	access, refresh, err := tm.GenerateTokens(id, email, role)
	if err != nil {
		middlewares.HttpError(c, err)
		return nil, false
	}
	utils.SetRefreshCookie(c, refresh, tm.RefreshTTL())
	return gin.H{"token": access, "refreshToken": refresh}, true
}

// denyForeignPatient rejects patients reading another patient's records.
func denyForeignPatient(c *gin.Context, patientID string) bool {
	if middlewares.CanAccessPatient(c, patientID) {
		return false
	}
	middlewares.HttpError(c, utils.Unauthorized("Not Authorized"))
	return true
}

func respondOK(c *gin.Context, data gin.H) {
	middlewares.RespondJSON(c, data, http.StatusOK)
}

func respondCreated(c *gin.Context, data gin.H) {
	middlewares.RespondJSON(c, data, http.StatusCreated)
}
