package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftlist/pkg/response"
)

// Auth resolves the acting user. Full session handling lives in front of
// this service; here the authenticated user ID arrives as a trusted header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// Identify guarantees a visitor identification: read from the cookie, or
// minted and set on first contact. Works for anonymous visitors, so reserve
// routes use this instead of Auth.
func (m Middleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(IdentificationCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(IdentificationCookie, id, identificationMaxAge, "/", "", false, true)
		}
		c.Set(IdentificationKey, id)
		c.Next()
	}
}
