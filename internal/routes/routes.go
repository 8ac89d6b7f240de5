package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/config"
	"cms_backend/internal/handlers"
	"cms_backend/internal/logger"
	"cms_backend/internal/middleware"
)

// RegisterRoutes registers every HTTP route. The auth pages (login,
// registration, password reset) are public; everything else sits behind the
// session middleware, which redirects anonymous requests to /login.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, cfg *config.Config) {
	appHandlers.AuthHandler.RegisterPublicRoutes(ginRouter)

	protected := ginRouter.Group("/")
	protected.Use(middleware.AuthRequired([]byte(cfg.JWT.Secret)))
	{
		protected.GET("", topPage)

		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.PersonHandler.RegisterRoutes(protected)
		appHandlers.CostHandler.RegisterRoutes(protected)
	}

	logger.Info("Routes registered")
}

func topPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Cost management system"})
}
