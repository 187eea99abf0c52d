package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"ideanest/internal/infrastructure/firebase"
	"ideanest/internal/usecase"
	"ideanest/pkg/response"
)

// DevTokenHandler issues local identity tokens so the full flow can be
// exercised without Firebase credentials. Wired only in development.
type DevTokenHandler struct {
	devTokens *firebase.DevTokenVerifier
}

var devTokenHandler *DevTokenHandler

func SetupDevTokenHandler(devTokens *firebase.DevTokenVerifier) {
	devTokenHandler = &DevTokenHandler{devTokens: devTokens}
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

type devTokenRequest struct {
	UID         string `json:"uid" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

func (h *DevTokenHandler) IssueToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.devTokens.IssueToken(&usecase.Identity{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}, 24*time.Hour)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"token": token})
}
