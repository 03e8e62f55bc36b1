package models

import "time"

// Employee represents an employee record. Updates replace the whole record;
// the identifier is server-assigned and never taken from the client.
type Employee struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Role       string    `json:"role" gorm:"not null"`
	Department string    `json:"department" gorm:"not null"`
	Status     string    `json:"status" gorm:"not null;default:'active'"`
	DateHired  time.Time `json:"dateHired" gorm:"column:date_hired"`
	Phone      string    `json:"phone"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// SameContent reports whether two employees hold identical field values,
// identifiers aside. Used to tell a no-op replacement from a real update.
func (e Employee) SameContent(other Employee) bool {
	return e.Name == other.Name &&
		e.Email == other.Email &&
		e.Role == other.Role &&
		e.Department == other.Department &&
		e.Status == other.Status &&
		e.DateHired.Equal(other.DateHired) &&
		e.Phone == other.Phone
}
