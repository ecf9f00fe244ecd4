package middleware

import (
	"errors"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"pretexta_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to the user it was issued for.
type Authenticator interface {
	Authenticate(token string) (*model.User, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		if authHeader == "" || tokenString == "" || tokenString == authHeader {
			util.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		user, err := auth.Authenticate(tokenString)
		if err != nil {
			var authErr *util.AuthError
			if !errors.As(err, &authErr) {
				logger.Log.Warn("authentication failed", zap.String("path", c.FullPath()), zap.Error(err))
				err = util.NewAuthError(util.ErrInvalidToken)
			}
			util.HandleError(c, err)
			c.Abort()
			return
		}

		util.SetCurrentUser(c, user)
		c.Next()
	}
}
