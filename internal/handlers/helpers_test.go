package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-task-api/internal/auth"
	"employee-task-api/internal/middleware"
	"employee-task-api/internal/realtime"
	"employee-task-api/internal/store"
	"employee-task-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestTokens() *auth.Manager {
	return auth.NewManager("test-secret", "test-issuer", "test-audience")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	return db
}

// newEmployeeServer wires an employee handler the way the router does,
// session gate included, and returns a token accepted by that gate.
func newEmployeeServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	h := NewEmployeeHandler(store.NewEmployeeStore(db), realtime.NewHub())
	tokens := newTestTokens()

	r := gin.New()
	r.GET("/employees", h.GetEmployees)
	r.GET("/employees/:id", h.GetEmployeeByID)
	gated := r.Group("", middleware.RequireSession(tokens))
	gated.POST("/employees", h.CreateEmployee)
	gated.PUT("/employees/:id", h.UpdateEmployee)
	gated.DELETE("/employees/:id", h.DeleteEmployee)

	token, err := tokens.GenerateToken("u-1", "alice")
	require.NoError(t, err)
	return r, token
}

func newTaskServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	h := NewTaskHandler(store.NewTaskStore(db), realtime.NewHub())
	tokens := newTestTokens()

	r := gin.New()
	r.GET("/tasks", h.GetTasks)
	r.GET("/tasks/:id", h.GetTaskByID)
	gated := r.Group("", middleware.RequireSession(tokens))
	gated.POST("/tasks", h.CreateTask)
	gated.PUT("/tasks/:id", h.UpdateTask)
	gated.DELETE("/tasks/:id", h.DeleteTask)

	token, err := tokens.GenerateToken("u-1", "alice")
	require.NoError(t, err)
	return r, token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
