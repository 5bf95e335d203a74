package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	profileContextKey = "profileID"
	profileMaxAge     = 400 * 24 * 60 * 60
)

// profile makes sure every request carries a valid profile id, minting one when needed.
func (s *Server) profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(s.cookieName)
		if err != nil || !validProfileID(id) {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(s.cookieName, id, profileMaxAge, "/", "", false, true)
		}
		c.Set(profileContextKey, id)
		c.Next()
	}
}

func validProfileID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func profileID(c *gin.Context) string {
	return c.GetString(profileContextKey)
}
