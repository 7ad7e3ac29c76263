// Package response renders the API's JSON envelope. Every payload is
// wrapped in {"success": bool} with either a "data" or an "error" object,
// so clients can branch on a single field.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Paginated wraps a list payload together with the total row count, keyed
// by the collection name ("reservations", "restaurants", ...).
func Paginated(c *gin.Context, statusCode int, key string, items any, total int64) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data": gin.H{
			key:     items,
			"total": total,
		},
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
