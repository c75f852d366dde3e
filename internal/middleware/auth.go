package middleware

import (
	"net/http"
	"strings"

	"logistik_backend/internal/auth"
	"logistik_backend/internal/logger"
	"logistik_backend/internal/repositories"
	"logistik_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

// AuthMiddleware verifies the bearer access token, resolves its subject to an
// existing user and requires the user to still hold a refresh token (a user
// without one is logged out and gets 403).
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("missing bearer token in the request header"))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenStr == "" {
			abortWithError(c, apperrors.NewUnauthorizedError("invalid bearer token"))
			return
		}

		claims, err := tokens.Verify(tokenStr, auth.TokenKindAccess)
		if err != nil {
			abortWithError(c, apperrors.NewInvalidTokenError("invalid access token"))
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("record does not exist"))
				return
			}
			abortWithError(c, apperrors.InternalError(err))
			return
		}

		if user.RefreshToken == nil {
			abortWithError(c, apperrors.ErrForbidden)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserEmailKey, user.Email)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserEmail extracts the authenticated user email from the context.
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get(ContextUserEmailKey)
	if !exists {
		return ""
	}

	e, ok := email.(string)
	if !ok {
		return ""
	}
	return e
}

// NoRouteHandler answers unknown endpoints with the NotFound envelope.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "endpoint does not exist", http.StatusNotFound))
	}
}
