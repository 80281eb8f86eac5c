package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/session"
)

type AuthHandler struct {
	session session.Store
}

func NewAuthHandler(sess session.Store) *AuthHandler {
	return &AuthHandler{session: sess}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login payload")
	}

	if err := h.session.Login(ctx, req.Email, req.Password); err != nil {
		var apiErr *apierr.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = "login failed"
			}
			return echo.NewHTTPError(apiErr.StatusCode, msg)
		}
		return echo.NewHTTPError(http.StatusBadGateway, "login failed")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"userId": h.session.UserID(),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.session.Logout(ctx); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": h.session.Authenticated(),
		"userId":        h.session.UserID(),
	})
}
