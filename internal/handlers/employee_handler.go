package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"employee-task-api/internal/models"
	"employee-task-api/internal/realtime"
	"employee-task-api/internal/store"
	"employee-task-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler serves the employees collection.
type EmployeeHandler struct {
	store *store.EmployeeStore
	hub   *realtime.Hub
}

func NewEmployeeHandler(s *store.EmployeeStore, hub *realtime.Hub) *EmployeeHandler {
	return &EmployeeHandler{store: s, hub: hub}
}

// EmployeeRequest is the payload for create and update. Updates replace the
// whole record, so the two operations share one shape.
type EmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
	DateHired  string `json:"dateHired"`
	Phone      string `json:"phone"`
}

// resolve validates the payload and builds the full record, applying the
// documented defaults exactly once. A non-empty string is the client-facing
// rejection message.
func (r EmployeeRequest) resolve() (*models.Employee, string) {
	required := map[string]string{
		"name":       r.Name,
		"email":      r.Email,
		"role":       r.Role,
		"department": r.Department,
	}
	if missing := validation.MissingFields([]string{"name", "email", "role", "department"}, required); len(missing) > 0 {
		return nil, "Missing required fields: name, email, role, and department are required"
	}
	if !validation.Email(r.Email) {
		return nil, "Invalid email format"
	}
	hired, ok := validation.Date(r.DateHired)
	if !ok {
		return nil, "Invalid date format"
	}
	if hired.IsZero() {
		hired = time.Now().UTC()
	}
	status := r.Status
	if status == "" {
		status = "active"
	}
	return &models.Employee{
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		Department: r.Department,
		Status:     status,
		DateHired:  hired,
		Phone:      r.Phone,
	}, ""
}

// GetEmployees handles GET /employees
// Returns every employee, in storage iteration order. Always 200, even empty.
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "getting all employees", employeeErrors,
			"Internal server error while retrieving employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployeeByID handles GET /employees/:id
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	employee, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "getting employee by ID", employeeErrors,
			"Internal server error while retrieving employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, reject := req.resolve()
	if reject != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reject})
		return
	}

	if err := h.store.Insert(c.Request.Context(), employee); err != nil {
		respondStoreError(c, err, "creating employee", employeeErrors,
			"Internal server error while creating employee")
		return
	}

	h.publish(c, "employee_created", employee.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Employee created successfully",
		"id":       employee.ID,
		"employee": employee,
	})
}

// UpdateEmployee handles PUT /employees/:id
// Whole-record replacement; the same validation as create applies.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	// A bad path parameter is reported before any body validation
	id := c.Param("id")
	if err := store.CheckID(id); err != nil {
		respondStoreError(c, err, "updating employee", employeeErrors,
			"Internal server error while updating employee")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, reject := req.resolve()
	if reject != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reject})
		return
	}

	changed, err := h.store.Replace(c.Request.Context(), id, employee)
	if err != nil {
		respondStoreError(c, err, "updating employee", employeeErrors,
			"Internal server error while updating employee")
		return
	}

	message := "Employee data unchanged"
	if changed {
		message = "Employee updated successfully"
	}
	h.publish(c, "employee_updated", id)
	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"id":       id,
		"employee": employee,
	})
}

// DeleteEmployee handles DELETE /employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "deleting employee", employeeErrors,
			"Internal server error while deleting employee")
		return
	}

	h.publish(c, "employee_deleted", id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Employee deleted successfully",
		"id":      id,
	})
}

func (h *EmployeeHandler) publish(c *gin.Context, event, id string) {
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
