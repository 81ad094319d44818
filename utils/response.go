package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard response envelope with a payload.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data, "error": nil})
}

// JSONError writes the standard response envelope with a stable error code.
func JSONError(c *gin.Context, code int, errCode string) {
	c.JSON(code, gin.H{"success": false, "data": nil, "error": errCode})
}

// JSONValidationError writes a VALIDATION_ERROR envelope with per-field details.
func JSONValidationError(c *gin.Context, code int, details map[string][]string) {
	c.JSON(code, gin.H{
		"success": false,
		"data":    nil,
		"error":   "VALIDATION_ERROR",
		"details": details,
	})
}
