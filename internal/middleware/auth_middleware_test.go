package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/auth"
)

func testRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	m := NewAuthMiddleware(jwtSvc)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	router.GET("/admin", m.JWTAuth(), m.RoleRequired("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/open", m.OptionalAuth(), func(c *gin.Context) {
		if _, ok := CurrentUserID(c); ok {
			c.JSON(http.StatusOK, gin.H{"authenticated": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
	})
	return router, jwtSvc
}

func issueToken(t *testing.T, jwtSvc *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, err := jwtSvc.GenerateToken(&models.User{ID: 42, Email: "jamie@campus.edu", RoleType: role})
	require.NoError(t, err)
	return token
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestJWTAuthBearerHeader(t *testing.T) {
	router, jwtSvc := testRouter(t)
	token := issueToken(t, jwtSvc, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestJWTAuthSessionCookie(t *testing.T) {
	router, jwtSvc := testRouter(t)
	token := issueToken(t, jwtSvc, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	router, jwtSvc := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtSvc, models.RoleStudent))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtSvc, models.RoleAdmin))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	router, jwtSvc := testRouter(t)

	// Anonymous request passes through.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")

	// A garbage credential is ignored rather than rejected.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer junk")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")

	// A valid credential attaches the identity.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtSvc, models.RoleStudent))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", apperrors.ErrItemNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrDuplicateClaim, http.StatusConflict},
		{"already subscribed", apperrors.ErrAlreadySubscribed, http.StatusConflict},
		{"forbidden", apperrors.NewForbiddenError("no"), http.StatusForbidden},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"validation", apperrors.NewValidationError("bad"), http.StatusBadRequest},
		{"self claim", apperrors.ErrSelfClaim, http.StatusBadRequest},
		{"event started", apperrors.ErrEventStarted, http.StatusBadRequest},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)
			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), "message")
		})
	}
}
