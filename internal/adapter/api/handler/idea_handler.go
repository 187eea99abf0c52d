package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/middleware"
	"ideanest/internal/usecase"
	"ideanest/pkg/errors"
	"ideanest/pkg/response"
)

type IdeaHandler struct {
	ideaUseCase *usecase.IdeaUseCase
}

func NewIdeaHandler(ideaUseCase *usecase.IdeaUseCase) *IdeaHandler {
	return &IdeaHandler{
		ideaUseCase: ideaUseCase,
	}
}

func (h *IdeaHandler) ListIdeas(c echo.Context) error {
	ideas, err := h.ideaUseCase.ListIdeas(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"ideas": ideas})
}

func (h *IdeaHandler) GetIdea(c echo.Context) error {
	id, err := ideaIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	idea, err := h.ideaUseCase.GetIdea(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, idea)
}

func (h *IdeaHandler) ToggleLike(c echo.Context) error {
	id, err := ideaIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	identity := middleware.IdentityFrom(c)

	result, err := h.ideaUseCase.ToggleLike(c.Request().Context(), id, identity.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func ideaIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.BadRequest("Idea id must be an integer", err)
	}
	return id, nil
}
