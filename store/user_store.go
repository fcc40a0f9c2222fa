// Package store holds the single-table query layer. Each store wraps the
// shared *gorm.DB handle constructed at process start; none of them keeps
// state of its own.
package store

import (
	"studio/models"

	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// Create inserts a user record.
func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// FindByEmail fetches a user by email.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	return user, err
}

// All returns every user record.
func (s *UserStore) All() ([]models.User, error) {
	var users []models.User
	err := s.db.Find(&users).Error
	return users, err
}

// Instructors returns users whose role is instructor.
func (s *UserStore) Instructors() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role = ?", models.RoleInstructor).Find(&users).Error
	return users, err
}

// SetRole updates a user's role by id and reports how many rows matched.
func (s *UserStore) SetRole(id uint, role string) (int64, error) {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected, res.Error
}

// Delete removes the user record for good. User deletion is an explicit
// admin action, not a soft archive.
func (s *UserStore) Delete(id uint) (int64, error) {
	res := s.db.Unscoped().Where("id = ?", id).Delete(&models.User{})
	return res.RowsAffected, res.Error
}
