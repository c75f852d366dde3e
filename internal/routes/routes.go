package routes

import (
	"logistik_backend/internal/handlers"
	"logistik_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, authMiddleware)
		appHandlers.PackageHandler.RegisterRoutes(api, authMiddleware)
	}

	ginRouter.NoRoute(middleware.NoRouteHandler())
}
