package router

import (
	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/handler"
	"ideanest/internal/adapter/api/middleware"
)

func SetupIdeaRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	ideaHandler := handler.GetIdeaHandler()

	ideas := e.Group("/v1/ideas")
	ideas.Use(authMiddleware.Authenticate)

	ideas.GET("", ideaHandler.ListIdeas)
	ideas.GET("/:id", ideaHandler.GetIdea)
	ideas.POST("/:id/like", ideaHandler.ToggleLike)
}
