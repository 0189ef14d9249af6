package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// RequireUser rejects requests without a valid bearer token and attaches the
// decoded session to the context.
func RequireUser(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if !strings.HasPrefix(raw, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		sess, err := tokens.Parse(strings.TrimPrefix(raw, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireAdmin gates a route group on the presence of an admin role row.
// Absence denies with an explicit notice; a failed lookup also denies, since
// this gate is presentational and the store's own rules are the real boundary.
func RequireAdmin(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		isAdmin, err := repo.HasRole(c.Request.Context(), sess.UserID, RoleAdmin)
		if err != nil || !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you don't have admin access"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session set by RequireUser.
func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}
