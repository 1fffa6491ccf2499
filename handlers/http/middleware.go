package httpHandler

import (
	"strings"

	"home-monitor/apperrors"
	"home-monitor/usecases"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthRequired verifies the bearer token and confirms the subject user still
// exists before letting the request through. The verified user id is stashed
// in the request context.
func AuthRequired(authUC *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			respondError(c, apperrors.ErrTokenValidation)
			c.Abort()
			return
		}

		userID, err := authUC.CurrentUser(token)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}
