package models

import (
	"gorm.io/gorm"
)

// CartItem is a pending purchase line. Course name, image and price are
// denormalized onto the item so the cart can render without a catalog join.
type CartItem struct {
	gorm.Model
	Email      string  `gorm:"index;not null" json:"email"`
	CourseID   uint    `gorm:"index;not null" json:"courseId"`
	CourseName string  `json:"courseName"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}
