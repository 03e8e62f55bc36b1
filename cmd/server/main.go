package main

import (
	"log"

	"employee-task-api/internal/config"
	"employee-task-api/internal/database"
	"employee-task-api/internal/realtime"
	"employee-task-api/internal/routes"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	hub := realtime.NewHub()
	ginRoutes := routes.Setup(cfg, db, hub)

	addr := ":" + cfg.Port
	log.Printf("Server starting on port %s", addr)
	log.Println("API endpoints:")
	log.Println("  GET    /")
	log.Println("  GET    /health")
	log.Println("  POST   /register")
	log.Println("  POST   /login")
	log.Println("  POST   /logout")
	log.Println("  GET    /login/github")
	log.Println("  GET    /employees")
	log.Println("  GET    /employees/:id")
	log.Println("  POST   /employees")
	log.Println("  PUT    /employees/:id")
	log.Println("  DELETE /employees/:id")
	log.Println("  GET    /tasks")
	log.Println("  GET    /tasks/:id")
	log.Println("  POST   /tasks")
	log.Println("  PUT    /tasks/:id")
	log.Println("  DELETE /tasks/:id")
	log.Println("  GET    /ws")

	if err := ginRoutes.Run(addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
