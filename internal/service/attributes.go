package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/client"
	"plantstore-admin/internal/form"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

var attributeLabels = map[client.AttributeKind]string{
	client.KindCategory:    "Category",
	client.KindColor:       "Color",
	client.KindProductType: "Product type",
	client.KindPlantType:   "Plant type",
}

// AttributeList manages one flat attribute collection (categories, colors,
// product types or plant types). Each list carries its own loading flag so
// the collections on the attributes screen fetch independently.
type AttributeList struct {
	mu          sync.Mutex
	storeClient client.StoreClient
	session     session.Store
	toasts      *toast.Notifier
	kind        client.AttributeKind
	label       string

	items   []model.Attribute
	loading bool
}

func NewAttributeList(storeClient client.StoreClient, sess session.Store, toasts *toast.Notifier, kind client.AttributeKind) *AttributeList {
	return &AttributeList{
		storeClient: storeClient,
		session:     sess,
		toasts:      toasts,
		kind:        kind,
		label:       attributeLabels[kind],
	}
}

func (l *AttributeList) Kind() client.AttributeKind { return l.kind }
func (l *AttributeList) Label() string              { return l.label }

func (l *AttributeList) Load(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	items, err := l.storeClient.ListAttributes(ctx, l.session.Token(), l.kind)
	if err != nil {
		l.fail(ctx, err, "Failed to load "+strings.ToLower(l.label)+" list")
		return err
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

func (l *AttributeList) Items() []model.Attribute {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Attribute, len(l.items))
	copy(out, l.items)
	return out
}

// Add validates the name locally, creates the attribute and reloads. An
// empty name never reaches the network.
func (l *AttributeList) Add(ctx context.Context, name string) (form.Errors, error) {
	if errs := form.ValidateAttributeName(l.label, name); !errs.Valid() {
		l.toasts.Add(errs["name"], toast.Error, 0)
		return errs, nil
	}

	err := l.storeClient.CreateAttribute(ctx, l.session.Token(), l.kind, strings.TrimSpace(name))
	if err != nil {
		l.fail(ctx, err, "Failed to add "+strings.ToLower(l.label))
		return nil, err
	}

	l.toasts.Add(l.label+" added successfully", toast.Success, 0)
	return nil, l.Load(ctx)
}

// Delete is fire-and-forget from the dashboard's perspective: no cascade
// check against products referencing the attribute.
func (l *AttributeList) Delete(ctx context.Context, id string) error {
	err := l.storeClient.DeleteAttribute(ctx, l.session.Token(), l.kind, id)
	if err != nil {
		l.fail(ctx, err, "Failed to delete "+strings.ToLower(l.label))
		return err
	}

	l.toasts.Add(l.label+" deleted successfully", toast.Success, 0)
	return l.Load(ctx)
}

func (l *AttributeList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *AttributeList) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

func (l *AttributeList) fail(ctx context.Context, err error, fallback string) {
	if errors.Is(err, apierr.ErrUnauthorized) {
		_ = l.session.Logout(ctx)
		return
	}
	l.toasts.Add(apierr.UserMessage(err, fallback), toast.Error, 0)
}
