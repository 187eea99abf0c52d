package router

import (
	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/handler"
	"ideanest/internal/adapter/api/middleware"
)

// SetupChatRouter mounts the mentor-chat endpoints; :id is the idea id.
func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.POST("/:id/messages", chatHandler.SendMessage)
	chats.GET("/:id/messages", chatHandler.GetHistory)
}
