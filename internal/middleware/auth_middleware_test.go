package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/pkg/auth"
)

func newGateTestRouter(t *testing.T, roles ...models.Role) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "gate-test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "profmatch.test",
	})
	gate := NewAuthMiddleware(jwtService, zerolog.Nop())

	router := gin.New()
	router.GET("/protected", gate.RequireAuth(roles...), func(c *gin.Context) {
		userID, role := Identity(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": string(role)})
	})
	return router, jwtService
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router, _ := newGateTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// No credential arrived, so there is nothing to clear.
	assert.Empty(t, rec.Result().Cookies())
}

func TestRequireAuth_InvalidTokenClearsCookie(t *testing.T) {
	router, _ := newGateTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie("not-a-jwt"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRequireAuth_ExpiredTokenClearsCookie(t *testing.T) {
	router, _ := newGateTestRouter(t)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "gate-test-secret",
		TokenExpiry: -time.Minute,
		TokenIssuer: "profmatch.test",
	})
	token, err := expiredService.GenerateToken(primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(token))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRequireAuth_RoleMismatchKeepsCookie(t *testing.T) {
	router, jwtService := newGateTestRouter(t, models.RoleAdmin)

	token, err := jwtService.GenerateToken(primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(token))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	// A valid session with the wrong role stays logged in.
	assert.Empty(t, rec.Result().Cookies())
}

func TestRequireAuth_AllowedRole(t *testing.T) {
	router, jwtService := newGateTestRouter(t, models.RoleAdmin, models.RoleProfessor)

	userID := primitive.NewObjectID().Hex()
	token, err := jwtService.GenerateToken(userID, models.RoleProfessor)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(token))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID)
	assert.Contains(t, rec.Body.String(), string(models.RoleProfessor))
}

func TestRequireAuth_AnyRoleWhenUnrestricted(t *testing.T) {
	router, jwtService := newGateTestRouter(t)

	token, err := jwtService.GenerateToken(primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(token))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	router, jwtService := newGateTestRouter(t, models.RoleAdmin)

	token, err := jwtService.GenerateToken(primitive.NewObjectID().Hex(), models.RoleAdmin)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_CookieWinsOverHeader(t *testing.T) {
	router, jwtService := newGateTestRouter(t)

	cookieID := primitive.NewObjectID().Hex()
	cookieToken, err := jwtService.GenerateToken(cookieID, models.RoleAdmin)
	require.NoError(t, err)
	headerToken, err := jwtService.GenerateToken(primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(cookieToken))
	req.Header.Set("Authorization", "Bearer "+headerToken)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), cookieID)
}
