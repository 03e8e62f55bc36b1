package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"employee-task-api/internal/models"
	"employee-task-api/internal/realtime"
	"employee-task-api/internal/store"
	"employee-task-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// TaskHandler serves the tasks collection.
type TaskHandler struct {
	store *store.TaskStore
	hub   *realtime.Hub
}

func NewTaskHandler(s *store.TaskStore, hub *realtime.Hub) *TaskHandler {
	return &TaskHandler{store: s, hub: hub}
}

// TaskRequest is the payload for create and update. Priority and status are
// accepted case-insensitively and stored lowercase.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	Remarks     string `json:"remarks"`
}

func (r TaskRequest) resolve() (*models.Task, string) {
	required := map[string]string{
		"title":       r.Title,
		"description": r.Description,
		"assignedTo":  r.AssignedTo,
	}
	if missing := validation.MissingFields([]string{"title", "description", "assignedTo"}, required); len(missing) > 0 {
		return nil, "Missing required fields: title, description, and assignedTo are required"
	}
	if !validation.Enum(r.Priority, models.ValidPriorities()) {
		return nil, "Invalid priority. Must be one of: low, medium, high, urgent"
	}
	if !validation.Enum(r.Status, models.ValidStatuses()) {
		return nil, "Invalid status. Must be one of: pending, in-progress, completed, cancelled"
	}
	due, ok := validation.Date(r.DueDate)
	if !ok {
		return nil, "Invalid due date format"
	}

	priority := models.TaskPriority(strings.ToLower(r.Priority))
	if priority == "" {
		priority = models.PriorityMedium
	}
	status := models.TaskStatus(strings.ToLower(r.Status))
	if status == "" {
		status = models.StatusPending
	}
	var duePtr *time.Time
	if !due.IsZero() {
		duePtr = &due
	}
	return &models.Task{
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
		Priority:    priority,
		Status:      status,
		DueDate:     duePtr,
		Remarks:     r.Remarks,
	}, ""
}

// GetTasks handles GET /tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "getting all tasks", taskErrors,
			"Internal server error while retrieving tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "getting task by ID", taskErrors,
			"Internal server error while retrieving task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, reject := req.resolve()
	if reject != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reject})
		return
	}

	if err := h.store.Insert(c.Request.Context(), task); err != nil {
		respondStoreError(c, err, "creating task", taskErrors,
			"Internal server error while creating task")
		return
	}

	h.publish(c, "task_created", task.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"id":      task.ID,
		"task":    task,
	})
}

// UpdateTask handles PUT /tasks/:id
// Whole-record replacement. CreatedAt survives; UpdatedAt is refreshed even
// when nothing else changed.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	// A bad path parameter is reported before any body validation
	id := c.Param("id")
	if err := store.CheckID(id); err != nil {
		respondStoreError(c, err, "updating task", taskErrors,
			"Internal server error while updating task")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, reject := req.resolve()
	if reject != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reject})
		return
	}

	changed, err := h.store.Replace(c.Request.Context(), id, task)
	if err != nil {
		respondStoreError(c, err, "updating task", taskErrors,
			"Internal server error while updating task")
		return
	}

	message := "Task data unchanged"
	if changed {
		message = "Task updated successfully"
	}
	h.publish(c, "task_updated", id)
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"id":      id,
		"task":    task,
	})
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "deleting task", taskErrors,
			"Internal server error while deleting task")
		return
	}

	h.publish(c, "task_deleted", id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      id,
	})
}

func (h *TaskHandler) publish(c *gin.Context, event, id string) {
	userID := c.GetString("user_id")
	if userID == "" {
		return
	}
	evt := map[string]any{
		"type":   event,
		"id":     id,
		"userId": userID,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		h.hub.Broadcast(userID, bytes)
	}
}
