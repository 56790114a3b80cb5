package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
)

const userContextKey = "user"

// RequireUser rejects requests whose session has no signed-in user.
// It must run after SessionMiddleware.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
			c.Abort()
			return
		}

		user, err := s.User()
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Sign in required"))
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the profile attached by RequireUser.
func CurrentUser(c *gin.Context) (*models.UserProfile, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.UserProfile)
	return user, ok
}
