package models

import "time"

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// ValidPriorities lists the accepted task priorities, in the order they are
// named in error messages.
func ValidPriorities() []string {
	return []string{
		string(PriorityLow),
		string(PriorityMedium),
		string(PriorityHigh),
		string(PriorityUrgent),
	}
}

// ValidStatuses lists the accepted task statuses.
func ValidStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusCancelled),
	}
}

// Task represents a task in the system. AssignedTo is free text with no link
// to any employee record.
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"not null"`
	AssignedTo  string       `json:"assignedTo" gorm:"column:assigned_to;not null"`
	Priority    TaskPriority `json:"priority" gorm:"not null;default:'medium'"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'pending'"`
	DueDate     *time.Time   `json:"dueDate" gorm:"column:due_date"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" gorm:"column:updated_at"`
	Remarks     string       `json:"remarks"`
}

// TableName specifies the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}

// SameContent compares everything except the identifier and the timestamp
// columns. CreatedAt never changes after insert and UpdatedAt is refreshed on
// every replacement, so neither says anything about the payload itself.
func (t Task) SameContent(other Task) bool {
	return t.Title == other.Title &&
		t.Description == other.Description &&
		t.AssignedTo == other.AssignedTo &&
		t.Priority == other.Priority &&
		t.Status == other.Status &&
		t.Remarks == other.Remarks &&
		timePtrEqual(t.DueDate, other.DueDate)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
