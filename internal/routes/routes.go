package routes

import (
	"net/http"

	"employee-task-api/internal/auth"
	"employee-task-api/internal/config"
	"employee-task-api/internal/handlers"
	"employee-task-api/internal/middleware"
	"employee-task-api/internal/realtime"
	"employee-task-api/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const welcomePage = `<h1>Welcome to the Employee Task Management System!</h1>
<h2>Available Routes:</h2>
<p>Use the links below to navigate:</p>
<ul>
  <li><a href="/employees">View Employees</a></li>
  <li><a href="/tasks">View Tasks</a></li>
  <li><a href="/login/github">Login with GitHub</a></li>
</ul>
<form method="post" action="/logout"><button type="submit">Logout</button></form>
`

// Setup wires stores, handlers and middleware onto a gin engine. Everything
// downstream receives its dependencies here; nothing reaches for globals.
func Setup(cfg config.Config, db *gorm.DB, hub *realtime.Hub) *gin.Engine {
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	employees := handlers.NewEmployeeHandler(store.NewEmployeeStore(db), hub)
	tasks := handlers.NewTaskHandler(store.NewTaskStore(db), hub)
	accounts := handlers.NewAuthHandler(store.NewUserStore(db), tokens, cfg)
	ws := handlers.NewWSHandler(hub)

	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// The welcome page is the only non-JSON surface
	ginRouter.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, welcomePage)
	})

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Employee Task Management API is running",
		})
	})

	// Account routes
	ginRouter.POST("/register", accounts.Register)
	ginRouter.POST("/login", accounts.Login)
	ginRouter.POST("/logout", accounts.Logout)
	ginRouter.GET("/login/github", accounts.GithubLogin)
	ginRouter.GET("/auth/github/callback", accounts.GithubCallback)

	// Reads are public
	ginRouter.GET("/employees", employees.GetEmployees)
	ginRouter.GET("/employees/:id", employees.GetEmployeeByID)
	ginRouter.GET("/tasks", tasks.GetTasks)
	ginRouter.GET("/tasks/:id", tasks.GetTaskByID)

	// Mutations require a session
	protectedRoutes := ginRouter.Group("")
	protectedRoutes.Use(middleware.RequireSession(tokens))
	{
		protectedRoutes.POST("/employees", employees.CreateEmployee)
		protectedRoutes.PUT("/employees/:id", employees.UpdateEmployee)
		protectedRoutes.DELETE("/employees/:id", employees.DeleteEmployee)

		protectedRoutes.POST("/tasks", tasks.CreateTask)
		protectedRoutes.PUT("/tasks/:id", tasks.UpdateTask)
		protectedRoutes.DELETE("/tasks/:id", tasks.DeleteTask)

		protectedRoutes.GET("/protected", accounts.Protected)
		protectedRoutes.GET("/ws", ws.Serve)
	}

	return ginRouter
}
