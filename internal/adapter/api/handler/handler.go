package handler

import (
	"ideanest/internal/usecase"
)

var (
	authHandler *AuthHandler
	ideaHandler *IdeaHandler
	chatHandler *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	ideaUseCase *usecase.IdeaUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	ideaHandler = NewIdeaHandler(ideaUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetIdeaHandler() *IdeaHandler {
	return ideaHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
