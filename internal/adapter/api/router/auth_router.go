package router

import (
	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/handler"
	"ideanest/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/session", authHandler.CreateSession)
	protected.GET("/me", authHandler.Me)
}
