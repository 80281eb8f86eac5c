package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/client"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/service"
)

// ApplicantHandler serves retailers, suppliers and the recent-deals
// applications behind one route group, keyed by kind.
type ApplicantHandler struct {
	lists map[client.ApplicantKind]*service.ApplicantList
}

func NewApplicantHandler(lists ...*service.ApplicantList) *ApplicantHandler {
	byKind := make(map[client.ApplicantKind]*service.ApplicantList, len(lists))
	for _, l := range lists {
		byKind[l.Kind()] = l
	}
	return &ApplicantHandler{lists: byKind}
}

func (h *ApplicantHandler) list(c echo.Context) (*service.ApplicantList, error) {
	l, ok := h.lists[client.ApplicantKind(c.Param("kind"))]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown applicant kind")
	}
	return l, nil
}

func (h *ApplicantHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	l, err := h.list(c)
	if err != nil {
		return err
	}

	if tab := c.QueryParam("tab"); tab != "" {
		if !validApplicationStatus(tab) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown application status")
		}
		l.SetActiveTab(tab)
	}

	if err := l.Load(ctx); err != nil {
		return err
	}

	resp := map[string]any{
		"applicants": l.Visible(),
		"total":      l.Total(),
		"activeTab":  l.ActiveTab(),
		"loading":    l.Loading(),
	}
	if len(l.Visible()) == 0 && !l.Loading() {
		resp["empty"] = l.Empty()
	}
	return c.JSON(http.StatusOK, resp)
}

type applicationStatusRequest struct {
	ApplicationStatus string `json:"applicationStatus"`
}

func (h *ApplicantHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	l, err := h.list(c)
	if err != nil {
		return err
	}

	var req applicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !validApplicationStatus(req.ApplicationStatus) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown application status")
	}

	if err := l.UpdateStatus(ctx, c.Param("id"), req.ApplicationStatus); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"applicants": l.Visible()})
}

func (h *ApplicantHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	l, err := h.list(c)
	if err != nil {
		return err
	}
	if err := l.Delete(ctx, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"applicants": l.Visible()})
}

func validApplicationStatus(status string) bool {
	switch status {
	case model.ApplicationAccepted, model.ApplicationPending, model.ApplicationRejected:
		return true
	}
	return false
}
