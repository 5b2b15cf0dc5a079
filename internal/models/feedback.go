package models

import "time"

// Feedback represents a message submitted through the site feedback form.
// Records are append-only: never updated or deleted.
type Feedback struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Date    time.Time `gorm:"not null" json:"date"`
}
