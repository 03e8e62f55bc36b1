package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-task-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(tokens *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireSession(tokens))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestRequireSession_Success(t *testing.T) {
	tokens := auth.NewManager("test-secret", "test-issuer", "test-audience")
	r := newGatedRouter(tokens)

	token, err := tokens.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-1")
}

func TestRequireSession_QueryParamFallback(t *testing.T) {
	tokens := auth.NewManager("test-secret", "test-issuer", "test-audience")
	r := newGatedRouter(tokens)

	token, err := tokens.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_MissingToken(t *testing.T) {
	tokens := auth.NewManager("test-secret", "test-issuer", "test-audience")
	r := newGatedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession_GarbageToken(t *testing.T) {
	tokens := auth.NewManager("test-secret", "test-issuer", "test-audience")
	r := newGatedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
