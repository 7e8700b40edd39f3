package report

import (
	"bytes"
	"fmt"
	"time"

	"zumpfinanc/internal/models"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// Statement is the content of a printable entry statement.
type Statement struct {
	User        *models.User
	Month       int // 0 for all months
	Year        int // 0 for all years
	Entries     []models.Entry
	Balance     decimal.Decimal
	GeneratedAt time.Time
}

// Totals sums confirmed income and expense among the statement entries.
func (s *Statement) Totals() (income, expense decimal.Decimal) {
	for i := range s.Entries {
		e := &s.Entries[i]
		if e.Status != models.StatusConfirmed {
			continue
		}
		switch e.Type {
		case models.EntryIncome:
			income = income.Add(e.Amount)
		case models.EntryExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return income, expense
}

func (s *Statement) period() string {
	switch {
	case s.Month > 0 && s.Year > 0:
		return fmt.Sprintf("%02d/%d", s.Month, s.Year)
	case s.Year > 0:
		return fmt.Sprintf("%d", s.Year)
	case s.Month > 0:
		return fmt.Sprintf("month %02d, all years", s.Month)
	}
	return "all entries"
}

// BuildPDF renders the statement as an A4 PDF.
func BuildPDF(s *Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("zumpfinanc statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	if s.User != nil {
		pdf.Cell(0, 8, fmt.Sprintf("User: %s <%s>", s.User.Name, s.User.Email))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, "Period: "+s.period())
	pdf.Ln(6)
	generated := s.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.Cell(0, 8, "Generated: "+generated.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	income, expense := s.Totals()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(60, 8, "Confirmed income: "+income.StringFixed(2))
	pdf.Cell(60, 8, "Confirmed expense: "+expense.StringFixed(2))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Current balance: "+s.Balance.StringFixed(2))
	pdf.Ln(12)

	widths := []float64{12, 70, 18, 24, 26, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, title := range []string{"ID", "Description", "Period", "Type", "Status", "Amount"} {
		pdf.CellFormat(widths[i], 7, title, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for i := range s.Entries {
		e := &s.Entries[i]
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", e.ID), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, truncate(e.Description, 40), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%02d/%d", e.Month, e.Year), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, string(e.Type), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, string(e.Status), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, e.Amount.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	if len(s.Entries) == 0 {
		pdf.Cell(0, 6, "No entries.")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
