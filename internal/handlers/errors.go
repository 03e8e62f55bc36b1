package handlers

import (
	"errors"
	"log"
	"net/http"

	"employee-task-api/internal/store"

	"github.com/gin-gonic/gin"
)

// storeErrorMessages groups the client-facing strings for one entity's store
// outcomes.
type storeErrorMessages struct {
	badID    string
	notFound string
	conflict string
}

var employeeErrors = storeErrorMessages{
	badID:    "Invalid employee ID format",
	notFound: "Employee not found",
	conflict: "Employee with this email already exists",
}

var taskErrors = storeErrorMessages{
	badID:    "Invalid task ID format",
	notFound: "Task not found",
}

// respondStoreError converts a store outcome into an HTTP response. op names
// the operation and entity for the server-side log; unclassified failures get
// the generic internalMsg so no internal detail reaches the client.
func respondStoreError(c *gin.Context, err error, op string, msgs storeErrorMessages, internalMsg string) {
	switch {
	case errors.Is(err, store.ErrMalformedID):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgs.badID})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgs.notFound})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgs.conflict})
	default:
		log.Printf("Error %s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
