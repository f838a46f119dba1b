package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey holds the subject of a verified bearer token.
const operatorIDKey = contextKey("operatorID")

// GetOperatorIDFromContext retrieves the authenticated operator from the Gin context.
// It returns the operator ID and a boolean indicating if it was found.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(operatorIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	if id, ok := c.Request.Context().Value(operatorIDKey).(string); ok {
		return id, true
	}
	return "", false
}
