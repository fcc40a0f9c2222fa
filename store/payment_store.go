package store

import (
	"studio/models"

	"gorm.io/gorm"
)

type PaymentStore struct{ db *gorm.DB }

func NewPaymentStore(db *gorm.DB) *PaymentStore { return &PaymentStore{db: db} }

// Create appends a payment record. Records are never mutated or deleted.
func (s *PaymentStore) Create(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

// ForEmail returns the payment history for one payer, newest first.
func (s *PaymentStore) ForEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("email = ?", email).Order("created_at desc").Find(&payments).Error
	return payments, err
}
