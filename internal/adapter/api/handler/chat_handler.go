package handler

import (
	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/middleware"
	"ideanest/internal/usecase"
	"ideanest/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// SendMessage forwards a chat message to the assistant and returns its
// reply. Both sides of the exchange land in the transcript.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	ideaID, err := ideaIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity := middleware.IdentityFrom(c)

	reply, err := h.chatUseCase.SendMessage(c.Request().Context(), identity.Email, ideaID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"response": reply})
}

// GetHistory returns the caller's transcript for an idea, oldest first.
func (h *ChatHandler) GetHistory(c echo.Context) error {
	ideaID, err := ideaIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	identity := middleware.IdentityFrom(c)

	history, err := h.chatUseCase.GetHistory(c.Request().Context(), identity.Email, ideaID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"history": history})
}
