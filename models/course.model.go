package models

import (
	"gorm.io/gorm"
)

// Course moderation statuses. Admins write the status verbatim, so any
// string may end up persisted; these are the two recognized values.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Course struct {
	gorm.Model
	Title           string  `json:"name"`
	Image           string  `gorm:"default:''" json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `gorm:"index" json:"instructorEmail"`
	Price           float64 `json:"price"`
	Seats           int     `json:"seats"`
	Enrolled        int     `gorm:"default:0" json:"enrolled"`
	Status          string  `gorm:"default:'pending'" json:"status"`
}
