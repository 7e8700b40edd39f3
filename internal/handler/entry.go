package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"zumpfinanc/internal/middleware"
	"zumpfinanc/internal/models"
	"zumpfinanc/internal/repository"
	"zumpfinanc/internal/service"
	"zumpfinanc/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errUserNotFound  = &service.BusinessRuleError{Message: "user not found for the given id"}
	errEntryNotFound = &service.BusinessRuleError{Message: "entry not found"}
	errInvalidStatus = &service.BusinessRuleError{Message: "invalid status"}
)

// EntryHandler serves the financial entry endpoints.
type EntryHandler struct {
	Ledger *service.Ledger
	Users  *service.Directory
}

func NewEntryHandler(ledger *service.Ledger, users *service.Directory) *EntryHandler {
	return &EntryHandler{
		Ledger: ledger,
		Users:  users,
	}
}

// ---------- request structures ----------

type entryReq struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	User        uint            `json:"user"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

func parseStatus(s string) (models.EntryStatus, bool) {
	st := models.EntryStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

// toEntry converts a request into an entry. A referenced user must exist;
// field rules are left to the ledger's validation.
func (h *EntryHandler) toEntry(ctx context.Context, req *entryReq) (*models.Entry, error) {
	e := &models.Entry{
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
		Amount:      req.Amount,
		Type:        models.EntryType(strings.ToUpper(strings.TrimSpace(req.Type))),
	}

	if req.User != 0 {
		user, err := h.Users.FindByID(ctx, req.User)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, errUserNotFound
			}
			return nil, err
		}
		e.UserID = user.ID
	}

	if req.Status != "" {
		st, ok := parseStatus(req.Status)
		if !ok {
			return nil, errInvalidStatus
		}
		e.Status = st
	}
	return e, nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// existing loads the entry named by the :id parameter for a mutation.
// A missing entry is reported as a business error (400).
func (h *EntryHandler) existing(c *gin.Context) (*models.Entry, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	entry, err := h.Ledger.FindByID(c.Request.Context(), id)
	if err != nil {
		respondMutationError(c, err)
		return nil, false
	}
	return entry, true
}

// respondMutationError reports an entry that is missing, or was deleted
// while being changed, as "entry not found".
func respondMutationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		err = errEntryNotFound
	}
	respondError(c, err)
}

// ---------- create ----------

func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
		return
	}

	entry, err := h.toEntry(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	saved, err := h.Ledger.Save(c.Request.Context(), entry)
	if err != nil {
		respondError(c, err)
		return
	}

	util.Created(c, util.Response{
		"entry": saved,
	})
}

// ---------- update ----------

func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	current, ok := h.existing(c)
	if !ok {
		return
	}

	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
		return
	}

	entry, err := h.toEntry(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	entry.ID = current.ID
	entry.RegisteredOn = current.RegisteredOn
	entry.CreatedAt = current.CreatedAt
	if entry.Status == "" {
		entry.Status = current.Status
	}

	updated, err := h.Ledger.Update(c.Request.Context(), entry)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": updated,
	})
}

// UpdateStatus changes only the status of an entry.
func (h *EntryHandler) UpdateStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
		return
	}
	status, ok := parseStatus(req.Status)
	if !ok {
		respondError(c, errInvalidStatus)
		return
	}

	entry, ok := h.existing(c)
	if !ok {
		return
	}

	updated, err := h.Ledger.UpdateStatus(c.Request.Context(), entry, status)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": updated,
	})
}

// ---------- delete ----------

func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	entry, ok := h.existing(c)
	if !ok {
		return
	}

	if err := h.Ledger.Delete(c.Request.Context(), entry); err != nil {
		respondMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---------- query ----------

func (h *EntryHandler) GetEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.Ledger.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": entry,
	})
}

// ListEntries searches entries by the given query parameters. Without a
// user parameter, the authenticated user's entries are searched.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()
	var filter repository.EntryFilter

	if s := c.Query("user"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
			return
		}
		user, err := h.Users.FindByID(ctx, uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondError(c, errUserNotFound)
			} else {
				respondError(c, err)
			}
			return
		}
		filter.UserID = &user.ID
	} else {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			respondError(c, errUserNotFound)
			return
		}
		filter.UserID = &user.ID
	}

	if s := c.Query("description"); s != "" {
		filter.Description = &s
	}
	for _, p := range []struct {
		key string
		dst **int
	}{{"month", &filter.Month}, {"year", &filter.Year}} {
		s := c.Query(p.key)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
			return
		}
		*p.dst = &n
	}
	if s := c.Query("type"); s != "" {
		typ := models.EntryType(strings.ToUpper(s))
		filter.Type = &typ
	}
	if s := c.Query("status"); s != "" {
		st, ok := parseStatus(s)
		if !ok {
			respondError(c, errInvalidStatus)
			return
		}
		filter.Status = &st
	}

	entries, err := h.Ledger.Search(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	util.Success(c, util.Response{
		"items": entries,
		"total": len(entries),
	})
}
