package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/client"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

// SkeletonRows is how many placeholder rows a list renders while loading.
const SkeletonRows = 5

// Payment filter values for the orders list.
const (
	PaymentFilterAll    = "all"
	PaymentFilterPaid   = "paid"
	PaymentFilterUnpaid = "unpaid"
)

// OrderCounts feeds the summary cards above the orders table.
type OrderCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
}

// EmptyState is the affordance shown when a list renders no rows.
type EmptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// OrderList mirrors the backend's order collection and derives the filtered
// view the dashboard renders. Filtering is pure and never touches the
// network; mutations go through the backend and either patch the one record
// (status changes) or trigger a full reload (deletes).
type OrderList struct {
	mu          sync.Mutex
	storeClient client.StoreClient
	session     session.Store
	toasts      *toast.Notifier

	orders   []model.Order
	filtered []model.Order
	loading  bool

	selectedStatuses []string
	paymentFilter    string
}

func NewOrderList(storeClient client.StoreClient, sess session.Store, toasts *toast.Notifier) *OrderList {
	return &OrderList{
		storeClient:   storeClient,
		session:       sess,
		toasts:        toasts,
		paymentFilter: PaymentFilterAll,
	}
}

// Load replaces the in-memory collection with the backend's, newest first.
// On failure the current list is left untouched and the error is surfaced as
// a toast; the loading flag clears either way.
func (l *OrderList) Load(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	orders, err := l.storeClient.ListOrders(ctx, l.session.Token())
	if err != nil {
		l.fail(ctx, err, "Failed to load orders")
		return err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Time.After(orders[j].Time)
	})

	l.mu.Lock()
	l.orders = orders
	l.applyFiltersLocked()
	l.mu.Unlock()
	return nil
}

// ToggleStatusFilter adds or removes one status from the selected set and
// re-derives the view. Selected statuses combine as a union.
func (l *OrderList) ToggleStatusFilter(status string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.selectedStatuses {
		if s == status {
			l.selectedStatuses = append(l.selectedStatuses[:i], l.selectedStatuses[i+1:]...)
			l.applyFiltersLocked()
			return
		}
	}
	l.selectedStatuses = append(l.selectedStatuses, status)
	l.applyFiltersLocked()
}

// SetPaymentFilter switches between all, paid (online and paid) and unpaid
// (online-unpaid or cash on delivery).
func (l *OrderList) SetPaymentFilter(value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paymentFilter = value
	l.applyFiltersLocked()
}

func (l *OrderList) applyFiltersLocked() {
	result := make([]model.Order, 0, len(l.orders))
	for _, order := range l.orders {
		if len(l.selectedStatuses) > 0 && !contains(l.selectedStatuses, order.Status) {
			continue
		}
		switch l.paymentFilter {
		case PaymentFilterPaid:
			if !(order.PaymentMethod == model.PaymentOnline && order.IsPaid) {
				continue
			}
		case PaymentFilterUnpaid:
			online := order.PaymentMethod == model.PaymentOnline
			if !((online && !order.IsPaid) || order.PaymentMethod == model.PaymentCOD) {
				continue
			}
		}
		result = append(result, order)
	}
	l.filtered = result
}

// Visible returns the filtered view in display order.
func (l *OrderList) Visible() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Order, len(l.filtered))
	copy(out, l.filtered)
	return out
}

// UpdateStatus moves one order to a new status. Submitting the status the
// order already has warns and skips the backend. On success the matching
// record is patched in place and the current filter re-applied; no reload.
func (l *OrderList) UpdateStatus(ctx context.Context, orderID, status string) error {
	l.mu.Lock()
	for i := range l.orders {
		if l.orders[i].ID == orderID && l.orders[i].Status == status {
			l.mu.Unlock()
			l.toasts.Add("Order already has this status", toast.Warning, 0)
			return nil
		}
	}
	l.mu.Unlock()

	err := l.storeClient.UpdateOrderStatus(ctx, l.session.Token(), orderID, status)
	if err != nil {
		l.fail(ctx, err, "Failed to update order status")
		return err
	}

	l.mu.Lock()
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			l.orders[i].Status = status
			break
		}
	}
	l.applyFiltersLocked()
	l.mu.Unlock()

	l.toasts.Add("Order status was successfully updated!", toast.Success, 0)
	return nil
}

// Delete removes one order and reloads the collection. The backend rejects
// deleting non-pending orders; that 400 gets a friendlier message.
func (l *OrderList) Delete(ctx context.Context, orderID string) error {
	err := l.storeClient.DeleteOrder(ctx, l.session.Token(), orderID)
	if err != nil {
		if l.handleUnauthorized(ctx, err) {
			return err
		}
		msg := apierr.Friendly(err, http.StatusBadRequest,
			"Only pending orders can be deleted", "Failed to delete order")
		l.toasts.Add(msg, toast.Error, 5*time.Second)
		return err
	}

	l.toasts.Add("Order was successfully deleted!", toast.Success, 0)
	return l.Load(ctx)
}

// Counts summarizes the unfiltered collection.
func (l *OrderList) Counts() OrderCounts {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := OrderCounts{Total: len(l.orders)}
	for _, order := range l.orders {
		switch order.Status {
		case model.OrderPending:
			counts.Pending++
		case model.OrderDelivered:
			counts.Delivered++
		}
	}
	return counts
}

// Statuses lists the distinct statuses present in the collection, in first
// appearance order, for the filter checkboxes.
func (l *OrderList) Statuses() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, order := range l.orders {
		if !seen[order.Status] {
			seen[order.Status] = true
			out = append(out, order.Status)
		}
	}
	return out
}

func (l *OrderList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Empty describes the empty-state row: the hint changes depending on whether
// filters are hiding orders or the collection is genuinely empty.
func (l *OrderList) Empty() EmptyState {
	l.mu.Lock()
	defer l.mu.Unlock()

	hint := "Orders will appear here once customers place them"
	if len(l.selectedStatuses) > 0 || l.paymentFilter != PaymentFilterAll {
		hint = "Try changing your filters to see more results"
	}
	return EmptyState{Title: "No orders available", Hint: hint}
}

func (l *OrderList) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

func (l *OrderList) fail(ctx context.Context, err error, fallback string) {
	if l.handleUnauthorized(ctx, err) {
		return
	}
	l.toasts.Add(apierr.UserMessage(err, fallback), toast.Error, 0)
}

func (l *OrderList) handleUnauthorized(ctx context.Context, err error) bool {
	if errors.Is(err, apierr.ErrUnauthorized) {
		_ = l.session.Logout(ctx)
		return true
	}
	return false
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
