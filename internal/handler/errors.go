package handler

import (
	"errors"
	"log"
	"net/http"

	"zumpfinanc/internal/service"
	"zumpfinanc/internal/util"

	"github.com/gin-gonic/gin"
)

const msgInvalidParam = "invalid parameters"

// respondError maps service errors to HTTP replies. Anything unclassified,
// including ErrUnsavedEntry, is logged and reported as a server error.
func respondError(c *gin.Context, err error) {
	var (
		vErr *service.ValidationError
		bErr *service.BusinessRuleError
		aErr *service.AuthenticationError
	)
	switch {
	case errors.As(err, &vErr):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, vErr.Message)
	case errors.As(err, &bErr):
		util.Error(c, http.StatusBadRequest, util.CodeBusinessRule, bErr.Message)
	case errors.As(err, &aErr):
		util.Error(c, http.StatusBadRequest, util.CodeAuth, aErr.Message)
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "not found")
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
	}
}
