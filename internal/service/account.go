// Package service holds the business rules: entry validation, the entry
// ledger, the user directory and the account service composing them.
package service

import (
	"context"
	"fmt"
	"log"

	"zumpfinanc/internal/models"

	"github.com/shopspring/decimal"
)

// Notifier delivers short operational messages, e.g. to a chat channel.
type Notifier interface {
	Notify(ctx context.Context, msg string) error
}

// Account serves the user-facing operations.
type Account struct {
	Users  *Directory
	Ledger *Ledger

	// Notifier is told about new registrations when set. Delivery failures
	// are logged and never fail the registration.
	Notifier Notifier
}

func NewAccount(users *Directory, ledger *Ledger) *Account {
	return &Account{Users: users, Ledger: ledger}
}

func (a *Account) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	return a.Users.Authenticate(ctx, email, password)
}

func (a *Account) RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := a.Users.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if a.Notifier != nil {
		msg := fmt.Sprintf("new user registered: %s (id %d)", user.Email, user.ID)
		if err := a.Notifier.Notify(ctx, msg); err != nil {
			log.Printf("notify registration of user %d: %v", user.ID, err)
		}
	}
	return user, nil
}

// BalanceForUser returns ErrNotFound when the user does not exist.
func (a *Account) BalanceForUser(ctx context.Context, userID uint) (decimal.Decimal, error) {
	if _, err := a.Users.FindByID(ctx, userID); err != nil {
		return decimal.Zero, err
	}
	return a.Ledger.Balance(ctx, userID)
}
