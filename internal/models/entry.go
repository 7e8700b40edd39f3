package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies an entry as income or expense.
type EntryType string

const (
	EntryIncome  EntryType = "INCOME"
	EntryExpense EntryType = "EXPENSE"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// EntryStatus is the lifecycle state of an entry.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusConfirmed EntryStatus = "CONFIRMED"
	StatusCanceled  EntryStatus = "CANCELED"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	}
	return false
}

// Entry is one income or expense record.
// Zero values stand for "not informed": ID 0 means the entry was never saved.
type Entry struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Description  string          `gorm:"size:255;not null" json:"description"`
	Month        int             `gorm:"index;not null" json:"month"`
	Year         int             `gorm:"index;not null" json:"year"`
	UserID       uint            `gorm:"index;not null" json:"user"`
	Amount       decimal.Decimal `gorm:"type:varchar(40);not null" json:"amount"` // exact decimal text, rounded to cents
	Type         EntryType       `gorm:"size:16;index;not null" json:"type"`
	Status       EntryStatus     `gorm:"size:16;index;not null" json:"status"`
	RegisteredOn time.Time       `gorm:"type:date" json:"registered_on"` // set on creation
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
