package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	CourseID uint   `gorm:"index" json:"courseId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}
