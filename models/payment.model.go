package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is the append-only record of a settled purchase. CourseIDs holds
// the purchased id list as posted by the client; it is never rewritten.
type Payment struct {
	gorm.Model
	ReceiptID     string         `gorm:"uniqueIndex;not null" json:"receiptId"`
	Email         string         `gorm:"index;not null" json:"email"`
	Amount        float64        `json:"price"`
	TransactionID string         `json:"transactionId"`
	CourseIDs     datatypes.JSON `json:"course"`
	CourseNames   datatypes.JSON `json:"courseNames"`
	Quantity      int            `json:"quantity"`
	Status        string         `gorm:"default:'service pending'" json:"status"`
	Date          time.Time      `json:"date"`
}
