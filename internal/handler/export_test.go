package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"zumpfinanc/internal/middleware"
	"zumpfinanc/internal/models"
	"zumpfinanc/internal/repository"
	"zumpfinanc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// listRepo serves a fixed entry list; writes are not expected.
type listRepo struct {
	entries []models.Entry
}

func (r *listRepo) Save(context.Context, *models.Entry) error   { return nil }
func (r *listRepo) Delete(context.Context, *models.Entry) error { return nil }
func (r *listRepo) FindByID(context.Context, uint) (*models.Entry, error) {
	return nil, repository.ErrNotFound
}
func (r *listRepo) FindAll(context.Context, repository.EntryFilter) ([]models.Entry, error) {
	return r.entries, nil
}

func exportXLSX(t *testing.T, sheet string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &listRepo{entries: []models.Entry{{
		ID:          1,
		Description: "salary",
		Month:       3,
		Year:        2024,
		UserID:      1,
		Amount:      decimal.RequireFromString("1000.10"),
		Type:        models.EntryIncome,
		Status:      models.StatusConfirmed,
	}}}
	h := NewExportHandler(service.NewLedger(repo), sheet)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/export/xlsx", nil)
	c.Set(middleware.CurrentUserKey, &models.User{ID: 1})

	h.ExportXLSX(c)
	return w
}

func TestExportXLSX_Workbook(t *testing.T) {
	w := exportXLSX(t, "Entries")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("missing Content-Disposition")
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Entries")
	if len(rows) != 2 || rows[1][1] != "salary" {
		t.Errorf("rows = %v", rows)
	}
}

func TestExportXLSX_FailureSendsOnlyError(t *testing.T) {
	// sheet names may not contain '/'
	w := exportXLSX(t, "bad/name")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "" {
		t.Errorf("Content-Disposition = %q, want none on failure", cd)
	}
	var body struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not a JSON error: %q", w.Body.String())
	}
	if body.Code != 50001 {
		t.Errorf("code = %d, want 50001", body.Code)
	}
}
