package service

import (
	"context"
	"errors"
	"sync"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/client"
	"plantstore-admin/internal/form"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

// ProductList mirrors the product collection. Every mutation invalidates the
// in-memory copy and refetches rather than patching.
type ProductList struct {
	mu          sync.Mutex
	storeClient client.StoreClient
	session     session.Store
	toasts      *toast.Notifier

	products []model.Product
	loading  bool
}

func NewProductList(storeClient client.StoreClient, sess session.Store, toasts *toast.Notifier) *ProductList {
	return &ProductList{
		storeClient: storeClient,
		session:     sess,
		toasts:      toasts,
	}
}

func (l *ProductList) Load(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	products, err := l.storeClient.ListProducts(ctx, l.session.Token())
	if err != nil {
		l.fail(ctx, err, "Failed to load products")
		return err
	}

	l.mu.Lock()
	l.products = products
	l.mu.Unlock()
	return nil
}

func (l *ProductList) Visible() []model.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Product, len(l.products))
	copy(out, l.products)
	return out
}

// Find returns the product with the given id from the in-memory copy.
func (l *ProductList) Find(productID string) (*model.Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.products {
		if l.products[i].ID == productID {
			p := l.products[i]
			return &p, true
		}
	}
	return nil, false
}

// Save submits a product form: local validation first (no network call on
// failure), then multipart create or update depending on the form's record
// id, then a reload. Backend validation rejections are mapped back onto the
// same field-error map local checks use.
func (l *ProductList) Save(ctx context.Context, f *form.ProductForm) (form.Errors, error) {
	if errs := f.Validate(); !errs.Valid() {
		return errs, nil
	}

	body, contentType, err := f.Payload()
	if err != nil {
		return nil, err
	}

	token := l.session.Token()
	if id := f.RecordID(); id != "" {
		err = l.storeClient.UpdateProduct(ctx, token, id, body, contentType)
	} else {
		err = l.storeClient.CreateProduct(ctx, token, body, contentType)
	}
	if err != nil {
		if l.handleUnauthorized(ctx, err) {
			return nil, err
		}
		if errs := form.MapServerError(err); !errs.Valid() {
			return errs, err
		}
		l.toasts.Add(apierr.UserMessage(err, "Failed to save product"), toast.Error, 0)
		return nil, err
	}

	l.toasts.Add("Product saved successfully", toast.Success, 0)
	return nil, l.Load(ctx)
}

// Delete removes one product, then reloads.
func (l *ProductList) Delete(ctx context.Context, productID string) error {
	err := l.storeClient.DeleteProduct(ctx, l.session.Token(), productID)
	if err != nil {
		l.fail(ctx, err, "Failed to delete product")
		return err
	}

	l.toasts.Add("Product deleted successfully", toast.Success, 0)
	return l.Load(ctx)
}

func (l *ProductList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *ProductList) Empty() EmptyState {
	return EmptyState{
		Title: "No products available",
		Hint:  "Add your first product to see it here",
	}
}

func (l *ProductList) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

func (l *ProductList) fail(ctx context.Context, err error, fallback string) {
	if l.handleUnauthorized(ctx, err) {
		return
	}
	l.toasts.Add(apierr.UserMessage(err, fallback), toast.Error, 0)
}

func (l *ProductList) handleUnauthorized(ctx context.Context, err error) bool {
	if errors.Is(err, apierr.ErrUnauthorized) {
		_ = l.session.Logout(ctx)
		return true
	}
	return false
}
