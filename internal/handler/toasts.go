package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/toast"
)

type ToastHandler struct {
	toasts *toast.Notifier
}

func NewToastHandler(toasts *toast.Notifier) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

func (h *ToastHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"toasts": h.toasts.Active(),
	})
}

func (h *ToastHandler) Dismiss(c echo.Context) error {
	h.toasts.Remove(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]any{
		"toasts": h.toasts.Active(),
	})
}
