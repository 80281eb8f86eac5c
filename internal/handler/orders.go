package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/model"
	"plantstore-admin/internal/service"
)

type OrderHandler struct {
	orders *service.OrderList
}

func NewOrderHandler(orders *service.OrderList) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderListResponse struct {
	Orders       []model.Order       `json:"orders"`
	Counts       service.OrderCounts `json:"counts"`
	Statuses     []string            `json:"statuses"`
	Loading      bool                `json:"loading"`
	SkeletonRows int                 `json:"skeletonRows"`
	Empty        *service.EmptyState `json:"empty,omitempty"`
}

// List refetches the collection and returns the filtered view. Filter state
// is controller-side; use Filters to change it without a refetch.
func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orders.Load(ctx); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response())
}

type orderFilterRequest struct {
	ToggleStatus string `json:"toggleStatus,omitempty"`
	Payment      string `json:"payment,omitempty"`
}

// Filters mutates the status set or the payment predicate and returns the
// re-derived view. No backend call happens here.
func (h *OrderHandler) Filters(c echo.Context) error {
	var req orderFilterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter payload")
	}

	if req.ToggleStatus != "" {
		h.orders.ToggleStatusFilter(req.ToggleStatus)
	}
	if req.Payment != "" {
		h.orders.SetPaymentFilter(req.Payment)
	}
	return c.JSON(http.StatusOK, h.response())
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status payload")
	}
	if !validOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
	}

	if err := h.orders.UpdateStatus(ctx, orderID, req.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response())
}

func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orders.Delete(ctx, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response())
}

func (h *OrderHandler) response() orderListResponse {
	resp := orderListResponse{
		Orders:       h.orders.Visible(),
		Counts:       h.orders.Counts(),
		Statuses:     h.orders.Statuses(),
		Loading:      h.orders.Loading(),
		SkeletonRows: service.SkeletonRows,
	}
	if len(resp.Orders) == 0 && !resp.Loading {
		empty := h.orders.Empty()
		resp.Empty = &empty
	}
	return resp
}

func validOrderStatus(status string) bool {
	for _, s := range model.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
