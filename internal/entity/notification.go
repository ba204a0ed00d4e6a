package entity

import (
	"time"
)

// Notification is an undelivered outbox message waiting for redelivery.
type Notification struct {
	Id        int64 `gorm:"primaryKey"`
	Symbol    string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
