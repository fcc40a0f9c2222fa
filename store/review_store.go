package store

import (
	"studio/models"

	"gorm.io/gorm"
)

type ReviewStore struct{ db *gorm.DB }

func NewReviewStore(db *gorm.DB) *ReviewStore { return &ReviewStore{db: db} }

// Create appends a review.
func (s *ReviewStore) Create(review *models.Review) error {
	return s.db.Create(review).Error
}

// All returns every review.
func (s *ReviewStore) All() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Find(&reviews).Error
	return reviews, err
}
