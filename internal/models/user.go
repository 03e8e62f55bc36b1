package models

// User represents an account that can hold a session. Accounts come from
// local registration or from the GitHub login flow.
type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	GithubLogin  string `json:"-" gorm:"column:github_login"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
