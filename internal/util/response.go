package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data part of a successful reply.
type Response map[string]interface{}

const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeBusinessRule = 40002
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// Success writes a 200 reply.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Created writes a 201 reply.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes an error reply and aborts the handler chain.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
