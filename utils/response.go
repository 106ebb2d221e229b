package utils

import (
	"github.com/gin-gonic/gin"
)

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// JSONError sends the standard error body: {"error": "<message>"}.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
