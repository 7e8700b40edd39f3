package models

import "time"

// User represents an account holder.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"` // case-sensitive, unique
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
