package handler

import (
	"github.com/labstack/echo/v4"

	"ideanest/internal/adapter/api/middleware"
	"ideanest/internal/usecase"
	"ideanest/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type sessionRequest struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

// CreateSession records a sign-in. The identity itself comes from the
// verified token; the body may only refresh profile fields.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.SignInInput{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
	}
	if req.DisplayName != "" {
		input.DisplayName = req.DisplayName
	}
	if req.PhotoURL != "" {
		input.PhotoURL = req.PhotoURL
	}

	user, err := h.authUseCase.SignIn(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// Me returns the stored record for the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	user, err := h.authUseCase.GetByEmail(c.Request().Context(), identity.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
