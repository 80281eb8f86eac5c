package service_test

import (
	"context"
	"fmt"
	"io"

	"plantstore-admin/internal/client"
	"plantstore-admin/internal/model"
)

// fakeStore is a scriptable client.StoreClient backed by in-memory
// collections. Mutations that succeed are applied to the collections so
// reload-after-mutate flows observe them.
type fakeStore struct {
	orders     []model.Order
	products   []model.Product
	attributes map[client.AttributeKind][]model.Attribute
	applicants map[client.ApplicantKind][]model.Application
	banners    []model.Banner

	failWith error // returned by every call when set

	listOrderCalls    int
	statusCalls       []string
	createBannerCalls int
	updateBannerIDs   []string
	productUpdates    []string
	productCreates    int
}

func (f *fakeStore) Login(ctx context.Context, email, password string) (*client.LoginResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &client.LoginResult{Token: "t0k3n", User: model.User{ID: "u1", Email: email}}, nil
}

func (f *fakeStore) ListProducts(ctx context.Context, token string) ([]model.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]model.Product(nil), f.products...), nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, token string, body io.Reader, contentType string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.productCreates++
	return nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, token, productID string, body io.Reader, contentType string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.productUpdates = append(f.productUpdates, productID)
	return nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, token, productID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, p := range f.products {
		if p.ID == productID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s not found", productID)
}

func (f *fakeStore) ListAttributes(ctx context.Context, token string, kind client.AttributeKind) ([]model.Attribute, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]model.Attribute(nil), f.attributes[kind]...), nil
}

func (f *fakeStore) CreateAttribute(ctx context.Context, token string, kind client.AttributeKind, name string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.attributes == nil {
		f.attributes = make(map[client.AttributeKind][]model.Attribute)
	}
	id := fmt.Sprintf("%s-%d", kind, len(f.attributes[kind])+1)
	f.attributes[kind] = append(f.attributes[kind], model.Attribute{ID: id, Name: name})
	return nil
}

func (f *fakeStore) DeleteAttribute(ctx context.Context, token string, kind client.AttributeKind, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	attrs := f.attributes[kind]
	for i, a := range attrs {
		if a.ID == id {
			f.attributes[kind] = append(attrs[:i], attrs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
	f.listOrderCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]model.Order(nil), f.orders...), nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, token, orderID, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.statusCalls = append(f.statusCalls, orderID+":"+status)
	return nil
}

func (f *fakeStore) DeleteOrder(ctx context.Context, token, orderID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, o := range f.orders {
		if o.ID == orderID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) ListApplicants(ctx context.Context, token string, kind client.ApplicantKind) ([]model.Application, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]model.Application(nil), f.applicants[kind]...), nil
}

func (f *fakeStore) UpdateApplicationStatus(ctx context.Context, token string, kind client.ApplicantKind, id, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.applicants[kind] {
		if f.applicants[kind][i].ID == id {
			f.applicants[kind][i].ApplicationStatus = status
		}
	}
	return nil
}

func (f *fakeStore) DeleteApplicant(ctx context.Context, token string, kind client.ApplicantKind, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	applicants := f.applicants[kind]
	for i, a := range applicants {
		if a.ID == id {
			f.applicants[kind] = append(applicants[:i], applicants[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) ListBanners(ctx context.Context, token string) ([]model.Banner, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]model.Banner(nil), f.banners...), nil
}

func (f *fakeStore) CreateBanner(ctx context.Context, token string, body io.Reader, contentType string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.createBannerCalls++
	f.banners = append(f.banners, model.Banner{
		ID:   fmt.Sprintf("b%d", len(f.banners)+1),
		Type: model.BannerMain,
	})
	return nil
}

func (f *fakeStore) UpdateBanner(ctx context.Context, token, bannerID string, body io.Reader, contentType string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.updateBannerIDs = append(f.updateBannerIDs, bannerID)
	return nil
}

// fakeSession satisfies session.Store without a database.
type fakeSession struct {
	token     string
	userID    string
	loggedOut bool
}

func (s *fakeSession) Restore(ctx context.Context) (bool, error) {
	return s.token != "" && s.userID != "", nil
}

func (s *fakeSession) Login(ctx context.Context, email, password string) error {
	s.token = "t0k3n"
	s.userID = "u1"
	return nil
}

func (s *fakeSession) Logout(ctx context.Context) error {
	s.token = ""
	s.userID = ""
	s.loggedOut = true
	return nil
}

func (s *fakeSession) Authenticated() bool { return s.token != "" && s.userID != "" }
func (s *fakeSession) Token() string       { return s.token }
func (s *fakeSession) UserID() string      { return s.userID }
