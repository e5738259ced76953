package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards the admin API with HTTP basic credentials checked against
// a bcrypt hash. An empty hash disables the whole surface.
func AdminAuth(username, passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if passwordHash == "" {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok || user != username {
			unauthorized(c)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pass)); err != nil {
			unauthorized(c)
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="academiq admin"`)
	c.AbortWithStatus(http.StatusUnauthorized)
}
