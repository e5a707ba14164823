package model

import "time"

// User represents a registered user. The email is the login key; uniqueness
// is enforced by the database index, not just the application-level check.
type User struct {
	ID           uint      `json:"_id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the minimal projection attached to authenticated requests and
// returned by the verify endpoint. It never carries the password hash.
type Identity struct {
	ID       uint   `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Identity returns the request-safe projection of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}
