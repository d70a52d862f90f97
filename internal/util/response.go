package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the generic success payload shape.
type Response map[string]interface{}

// JSON writes a 200 response with the given payload.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error writes an error response in the shape clients parse:
// {"error": "<message>"}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}
