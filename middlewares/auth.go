package middlewares

import (
	"MediCore/models"
	"MediCore/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey         = "authClaims"
	legacyAdminHeader = "atoken"
)

// RequireRoles authenticates the request and admits it only if the token's
// role is one of roles. Routes that allow admin also accept the legacy atoken header.
func RequireRoles(tm *utils.TokenManager, roles ...string) gin.HandlerFunc {
	allowLegacy := false
	for _, r := range roles {
		if r == models.RoleAdmin {
			allowLegacy = true
		}
	}

	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowLegacy {
			token = bearerToken(c.GetHeader(legacyAdminHeader))
		}
		if token == "" {
			HttpError(c, utils.Unauthorized("Not Authorized Login Again"))
			c.Abort()
			return
		}

		claims, err := tm.ValidateToken(token, roles...)
		if err != nil {
			HttpError(c, err)
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// bearerToken strips an optional "Bearer " prefix.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// Claims returns the identity stored by RequireRoles, or nil on public routes.
func Claims(c *gin.Context) *utils.TokenClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.TokenClaims)
	return claims
}

// CurrentUserID returns the authenticated subject, or "" on public routes.
func CurrentUserID(c *gin.Context) string {
	if claims := Claims(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// CanAccessPatient reports whether the caller may read records of patientID.
// Patients only see their own; every other authenticated role sees all.
func CanAccessPatient(c *gin.Context, patientID string) bool {
	claims := Claims(c)
	if claims == nil {
		return false
	}
	if claims.Role == models.RolePatient {
		return claims.UserID == patientID
	}
	return true
}
