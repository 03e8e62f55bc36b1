package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employee-task-api/internal/config"
	"employee-task-api/internal/realtime"
	"employee-task-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	cfg := config.Config{
		Port:        "8008",
		JWTSecret:   "route-test-secret",
		JWTIssuer:   "employee-task-api",
		JWTAudience: "employee-task-clients",
	}
	return Setup(cfg, db, realtime.NewHub())
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sessionToken registers and logs in a throwaway account, returning its token.
func sessionToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := do(t, router, http.MethodPost, "/register", "", map[string]string{
		"username": "router-tester",
		"email":    "router-tester@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/login", "", map[string]string{
		"username": "router-tester",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestWelcomePage(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Welcome to the Employee Task Management System")
	assert.Contains(t, w.Body.String(), `href="/login/github"`)
	assert.Contains(t, w.Body.String(), `action="/logout"`)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodOptions, "/employees", "", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMutationsRequireSession(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/employees"},
		{http.MethodPut, "/employees/abc"},
		{http.MethodDelete, "/employees/abc"},
		{http.MethodPost, "/tasks"},
		{http.MethodPut, "/tasks/abc"},
		{http.MethodDelete, "/tasks/abc"},
	} {
		w := do(t, router, tc.method, tc.path, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestReadsArePublic(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/employees", "/tasks"} {
		w := do(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()), path)
	}
}

func TestEmployeeLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := sessionToken(t, router)

	// Create
	w := do(t, router, http.MethodPost, "/employees", token, map[string]any{
		"name":       "Dana Velez",
		"email":      "dana@example.com",
		"role":       "Engineer",
		"department": "Platform",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// A replacement with a bad email is rejected outright
	w = do(t, router, http.MethodPut, "/employees/"+created.ID, token, map[string]any{
		"name":       "Dana Velez",
		"email":      "not-an-email",
		"role":       "Engineer",
		"department": "Platform",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")

	// The original record is untouched
	w = do(t, router, http.MethodGet, "/employees/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dana@example.com")

	// Delete, then the record is gone
	w = do(t, router, http.MethodDelete, "/employees/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/employees/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}

func TestTaskPriorityRejectedThroughRouter(t *testing.T) {
	router := newTestRouter(t)
	token := sessionToken(t, router)

	w := do(t, router, http.MethodPost, "/tasks", token, map[string]any{
		"title":       "Rotate credentials",
		"description": "Rotate the staging credentials",
		"assignedTo":  "Dana Velez",
		"priority":    "CRITICAL",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid priority. Must be one of: low, medium, high, urgent")

	w = do(t, router, http.MethodGet, "/tasks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGithubLoginUnconfigured(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/login/github", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestProtectedEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := sessionToken(t, router)

	w := do(t, router, http.MethodGet, "/protected", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/protected", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
