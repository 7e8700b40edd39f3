package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"zumpfinanc/internal/middleware"
	"zumpfinanc/internal/models"
	"zumpfinanc/internal/service"
	"zumpfinanc/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler serves authentication, registration and balance lookups.
type UserHandler struct {
	Accounts  *service.Account
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewUserHandler(accounts *service.Account, jwtSecret, issuer string, ttlHours int) *UserHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &UserHandler{
		Accounts:  accounts,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

func userResp(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}

// ---------- authenticate ----------

type authenticateReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Authenticate(c *gin.Context) {
	var req authenticateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
		return
	}

	user, err := h.Accounts.AuthenticateUser(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to issue token")
		return
	}

	util.Success(c, util.Response{
		"user":  userResp(user),
		"token": token,
	})
}

// ---------- register ----------

type registerReq struct {
	Name     string `json:"name" binding:"max=64"`
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msgInvalidParam)
		return
	}

	user, err := h.Accounts.RegisterUser(c.Request.Context(),
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	util.Created(c, util.Response{
		"user": userResp(user),
	})
}

// ---------- balance ----------

func (h *UserHandler) Balance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	balance, err := h.Accounts.BalanceForUser(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user_id": id,
		"balance": balance,
	})
}

// GetMe returns the authenticated user.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	resp := userResp(user)
	resp["created_at"] = user.CreatedAt
	util.Success(c, util.Response{
		"user": resp,
	})
}
