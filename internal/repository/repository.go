// Package repository holds the storage collaborators used by the service
// layer, together with their gorm implementations.
package repository

import (
	"context"
	"errors"

	"zumpfinanc/internal/models"
)

var (
	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique constraint rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository stores user identity records.
type UserRepository interface {
	// Create inserts u and fills in its ID.
	Create(ctx context.Context, u *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// EntryRepository stores financial entries.
type EntryRepository interface {
	// Save inserts e when e.ID is zero and replaces the stored row otherwise.
	// Replacing a row that no longer exists returns ErrNotFound.
	Save(ctx context.Context, e *models.Entry) error
	Delete(ctx context.Context, e *models.Entry) error
	FindByID(ctx context.Context, id uint) (*models.Entry, error)
	FindAll(ctx context.Context, f EntryFilter) ([]models.Entry, error)
}

// EntryFilter lists the criteria of an entry search. Nil fields are not
// constrained; set fields must match by equality.
type EntryFilter struct {
	Description *string
	Month       *int
	Year        *int
	UserID      *uint
	Type        *models.EntryType
	Status      *models.EntryStatus
}
