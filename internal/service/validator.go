package service

import (
	"strings"

	"zumpfinanc/internal/models"
)

const (
	MsgInvalidDescription = "invalid description"
	MsgInvalidMonth       = "invalid month"
	MsgInvalidYear        = "invalid year"
	MsgUserRequired       = "user must be informed"
	MsgInvalidAmount      = "invalid amount"
	MsgTypeRequired       = "entry type must be informed"
)

// ValidateEntry checks the fields of e in a fixed order and returns the
// first failure as a *ValidationError.
func ValidateEntry(e *models.Entry) error {
	switch {
	case e == nil || strings.TrimSpace(e.Description) == "":
		return &ValidationError{Field: "description", Message: MsgInvalidDescription}
	case e.Month < 1 || e.Month > 12:
		return &ValidationError{Field: "month", Message: MsgInvalidMonth}
	case e.Year < 1000 || e.Year > 9999:
		return &ValidationError{Field: "year", Message: MsgInvalidYear}
	case e.UserID == 0:
		return &ValidationError{Field: "user", Message: MsgUserRequired}
	case !e.Amount.IsPositive():
		return &ValidationError{Field: "amount", Message: MsgInvalidAmount}
	case !e.Type.Valid():
		return &ValidationError{Field: "type", Message: MsgTypeRequired}
	}
	return nil
}
