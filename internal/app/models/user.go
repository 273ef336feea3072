package models

import (
	"time"
)

// RoleType is the campus-wide role of a user
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
	RoleAdmin   RoleType = "admin"
)

// User defines the user model based on the 'users' table. Users are created on
// first OAuth login (upsert by email) and never deleted in normal operation.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	RoleType  RoleType  `json:"role" db:"role_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
