package router

import (
	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authMiddleware)
	SetupIdeaRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
}
