package service

import (
	"context"
	"errors"
	"fmt"

	"zumpfinanc/internal/models"
	"zumpfinanc/internal/repository"
)

// PasswordHasher hashes passwords and checks them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, stored string) bool
}

// Directory owns user identity records and keeps emails unique.
type Directory struct {
	repo   repository.UserRepository
	hasher PasswordHasher
}

func NewDirectory(repo repository.UserRepository, hasher PasswordHasher) *Directory {
	return &Directory{repo: repo, hasher: hasher}
}

// Register creates a user after checking that the email is free. The check
// and the insert are not atomic; a concurrent duplicate is caught by the
// unique index and reported as ErrEmailTaken as well.
func (d *Directory) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := d.ValidateEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	hash, err := d.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := d.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

func (d *Directory) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := d.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !d.hasher.Check(password, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

// ValidateEmailAvailable returns ErrEmailTaken if a user already has email.
func (d *Directory) ValidateEmailAvailable(ctx context.Context, email string) error {
	exists, err := d.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailTaken
	}
	return nil
}

func (d *Directory) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return d.repo.FindByID(ctx, id)
}
