package routes

import (
	"github.com/gin-gonic/gin"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/handlers"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/middleware"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokenIssuer *auth.TokenIssuer,
) {
	authMW := middleware.AuthMiddleware(tokenIssuer)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.CandidateAuthHandler.RegisterRoutes(api)
		appHandlers.OrganizationAuthHandler.RegisterRoutes(api)
		appHandlers.RecruiterAuthHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api, authMW)
		appHandlers.JobHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)
		appHandlers.CandidateHandler.RegisterRoutes(api, authMW)
	}

	logger.Info("API routes registered under /api/v1")
}
