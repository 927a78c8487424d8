package handlers

import (
	"MediCore/models"
	"MediCore/services"
	"MediCore/utils"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokens(t *testing.T) *utils.TokenManager {
	t.Helper()
	tm, err := utils.NewTokenManager("test-secret", "0123456789abcdef0123456789abcdef", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	return tm
}

func post(r http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newAdminRouter(tm *utils.TokenManager) *gin.Engine {
	admin := services.NewAdminService(
		services.AdminCredentials{Email: "admin@medicore.test", Password: "letmein123"},
		services.AdminRepositories{},
	)
	r := gin.New()
	h := NewAdminHandler(admin, nil, nil, tm)
	auth := NewAuthHandler(tm)
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/auth/refresh", auth.RefreshToken)
	r.POST("/api/auth/logout", auth.Logout)
	return r
}

func TestAdminLogin(t *testing.T) {
	tm := newTokens(t)
	r := newAdminRouter(tm)

	w := post(r, "/api/admin/login", `{"email":"admin@medicore.test","password":"letmein123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])

	claims, err := tm.ValidateToken(body["token"].(string), models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin@medicore.test", claims.Email)

	var refreshCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.RefreshTokenCookie {
			refreshCookie = c
		}
	}
	require.NotNil(t, refreshCookie)
	assert.True(t, refreshCookie.HttpOnly)
	assert.Equal(t, body["refreshToken"], refreshCookie.Value)

	w = post(r, "/api/admin/login", `{"email":"admin@medicore.test","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])

	w = post(r, "/api/admin/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshToken(t *testing.T) {
	tm := newTokens(t)
	r := newAdminRouter(tm)

	_, refresh, err := tm.GenerateTokens("u1", "ann@example.com", models.RolePatient)
	require.NoError(t, err)

	w := post(r, "/api/auth/refresh", `{"refreshToken":"`+refresh+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, models.RolePatient, body["role"])
	_, err = tm.ValidateToken(body["token"].(string), models.RolePatient)
	assert.NoError(t, err)

	w = post(r, "/api/auth/refresh", "", &http.Cookie{Name: utils.RefreshTokenCookie, Value: refresh})
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(r, "/api/auth/refresh", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Refresh token is required", decode(t, w)["message"])

	w = post(r, "/api/auth/refresh", `{"refreshToken":"v2.local.bogus"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAdminRouter(newTokens(t))

	w := post(r, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, utils.RefreshTokenCookie, cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
