package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminPasswordHeader carries the admin password on admin routes.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth rejects requests whose X-Admin-Password does not match the bcrypt
// hash. An empty hash rejects every request.
func AdminAuth(passwordHash string) gin.HandlerFunc {
	hash := []byte(passwordHash)
	return func(c *gin.Context) {
		password := c.GetHeader(AdminPasswordHeader)
		if len(hash) == 0 || password == "" ||
			bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid admin password"},
			})
			return
		}
		c.Next()
	}
}
