package service

import (
	"context"
	"fmt"
	"time"

	"zumpfinanc/internal/models"
	"zumpfinanc/internal/repository"

	"github.com/shopspring/decimal"
)

// Ledger owns financial entries and computes balances.
type Ledger struct {
	repo repository.EntryRepository
	now  func() time.Time
}

func NewLedger(repo repository.EntryRepository) *Ledger {
	return &Ledger{repo: repo, now: time.Now}
}

// roundAmount keeps amounts to whole cents, so a sub-cent amount fails
// validation instead of being stored as zero.
func roundAmount(e *models.Entry) {
	if e != nil {
		e.Amount = e.Amount.Round(2)
	}
}

// Save validates e, marks it PENDING, stamps the registration date and
// persists it. Nothing is written when validation fails.
func (l *Ledger) Save(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	roundAmount(e)
	if err := ValidateEntry(e); err != nil {
		return nil, err
	}

	now := l.now()
	e.Status = models.StatusPending
	e.RegisteredOn = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if err := l.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	return e, nil
}

// Update validates and persists the full record of a saved entry.
func (l *Ledger) Update(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	if e == nil || e.ID == 0 {
		return nil, ErrUnsavedEntry
	}
	roundAmount(e)
	if err := ValidateEntry(e); err != nil {
		return nil, err
	}
	if err := l.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("update entry %d: %w", e.ID, err)
	}
	return e, nil
}

func (l *Ledger) Delete(ctx context.Context, e *models.Entry) error {
	if e == nil || e.ID == 0 {
		return ErrUnsavedEntry
	}
	if err := l.repo.Delete(ctx, e); err != nil {
		return fmt.Errorf("delete entry %d: %w", e.ID, err)
	}
	return nil
}

// UpdateStatus sets e.Status before delegating to Update, so the caller's
// entry carries the new status even when the update fails.
func (l *Ledger) UpdateStatus(ctx context.Context, e *models.Entry, status models.EntryStatus) (*models.Entry, error) {
	if e != nil {
		e.Status = status
	}
	return l.Update(ctx, e)
}

func (l *Ledger) Search(ctx context.Context, f repository.EntryFilter) ([]models.Entry, error) {
	entries, err := l.repo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return entries, nil
}

func (l *Ledger) FindByID(ctx context.Context, id uint) (*models.Entry, error) {
	return l.repo.FindByID(ctx, id)
}

// Balance is confirmed income minus confirmed expense for userID.
func (l *Ledger) Balance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	income, err := l.confirmedTotal(ctx, userID, models.EntryIncome)
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := l.confirmedTotal(ctx, userID, models.EntryExpense)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expense), nil
}

func (l *Ledger) confirmedTotal(ctx context.Context, userID uint, typ models.EntryType) (decimal.Decimal, error) {
	status := models.StatusConfirmed
	entries, err := l.repo.FindAll(ctx, repository.EntryFilter{
		UserID: &userID,
		Type:   &typ,
		Status: &status,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum %s entries: %w", typ, err)
	}

	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Amount)
	}
	return total, nil
}
