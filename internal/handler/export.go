package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"zumpfinanc/internal/middleware"
	"zumpfinanc/internal/models"
	"zumpfinanc/internal/report"
	"zumpfinanc/internal/repository"
	"zumpfinanc/internal/service"
	"zumpfinanc/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"ID", "Description", "Month", "Year", "Type", "Status", "Amount", "Registered On"}

type ExportHandler struct {
	Ledger    *service.Ledger
	SheetName string
}

func NewExportHandler(ledger *service.Ledger, sheetName string) *ExportHandler {
	if sheetName == "" {
		sheetName = "Entries"
	}
	return &ExportHandler{
		Ledger:    ledger,
		SheetName: sheetName,
	}
}

// userEntries loads every entry of the authenticated user.
func (h *ExportHandler) userEntries(c *gin.Context) ([]models.Entry, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}

	entries, err := h.Ledger.Search(c.Request.Context(), repository.EntryFilter{UserID: &user.ID})
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return entries, true
}

func exportRow(e *models.Entry) []string {
	registered := ""
	if !e.RegisteredOn.IsZero() {
		registered = e.RegisteredOn.Format("2006-01-02")
	}
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		e.Description,
		strconv.Itoa(e.Month),
		strconv.Itoa(e.Year),
		string(e.Type),
		string(e.Status),
		e.Amount.StringFixed(2),
		registered,
	}
}

func attachment(c *gin.Context, ext string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.%s\"",
		time.Now().Format("20060102"), ext))
}

// ExportCSV writes the user's entries as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	entries, ok := h.userEntries(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	attachment(c, "csv")
	c.Status(http.StatusOK)

	// UTF-8 BOM so spreadsheet tools detect the encoding
	_, _ = c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(exportHeaders)
	for i := range entries {
		_ = writer.Write(exportRow(&entries[i]))
	}
	writer.Flush()
}

// ExportXLSX writes the user's entries as a single-sheet workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	entries, ok := h.userEntries(c)
	if !ok {
		return
	}

	buf, err := buildWorkbook(entries, h.SheetName)
	if err != nil {
		respondError(c, err)
		return
	}

	attachment(c, "xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// buildWorkbook renders entries into an in-memory XLSX file.
func buildWorkbook(entries []models.Entry, sheet string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	for i, title := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}

	for idx := range entries {
		e := &entries[idx]
		row := idx + 2
		amount, _ := e.Amount.Float64()

		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Month)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Year)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(e.Type))
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(e.Status))
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), amount)
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), exportRow(e)[7])
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "C", "F", 12)
	_ = f.SetColWidth(sheet, "G", "G", 14)
	_ = f.SetColWidth(sheet, "H", "H", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// ExportPDF writes a statement of the user's entries, optionally narrowed
// by the month and year query parameters.
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	ctx := c.Request.Context()

	st := &report.Statement{User: user, GeneratedAt: time.Now()}
	filter := repository.EntryFilter{UserID: &user.ID}
	for _, p := range []struct {
		key string
		dst *int
	}{{"month", &st.Month}, {"year", &st.Year}} {
		s := c.Query(p.key)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
			return
		}
		*p.dst = n
	}
	if st.Month > 0 {
		filter.Month = &st.Month
	}
	if st.Year > 0 {
		filter.Year = &st.Year
	}

	entries, err := h.Ledger.Search(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	st.Entries = entries

	if st.Balance, err = h.Ledger.Balance(ctx, user.ID); err != nil {
		respondError(c, err)
		return
	}

	out, err := report.BuildPDF(st)
	if err != nil {
		respondError(c, err)
		return
	}

	attachment(c, "pdf")
	c.Data(http.StatusOK, "application/pdf", out)
}
