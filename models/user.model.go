package models

import (
	"gorm.io/gorm"
)

// Roles stored on a user record. An empty role is a regular learner.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

type User struct {
	gorm.Model
	Name  string `gorm:"default:''" json:"name"`
	Email string `gorm:"unique;not null" json:"email"`
	Photo string `gorm:"default:''" json:"photo"`
	Role  string `gorm:"default:''" json:"role"`
}
