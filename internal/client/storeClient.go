package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/config"
	"plantstore-admin/internal/model"
)

// AttributeKind selects one of the flat product-attribute collections.
type AttributeKind string

const (
	KindCategory    AttributeKind = "category"
	KindColor       AttributeKind = "colortype"
	KindProductType AttributeKind = "producttype"
	KindPlantType   AttributeKind = "planttype"
)

// ApplicantKind selects one of the onboarding collections.
type ApplicantKind string

const (
	KindRetailer    ApplicantKind = "retailer"
	KindSupplier    ApplicantKind = "supplier"
	KindApplication ApplicantKind = "application"
)

type LoginResult struct {
	Token string
	User  model.User
}

type StoreClient interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	ListProducts(ctx context.Context, token string) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, body io.Reader, contentType string) error
	UpdateProduct(ctx context.Context, token, productID string, body io.Reader, contentType string) error
	DeleteProduct(ctx context.Context, token, productID string) error

	ListAttributes(ctx context.Context, token string, kind AttributeKind) ([]model.Attribute, error)
	CreateAttribute(ctx context.Context, token string, kind AttributeKind, name string) error
	DeleteAttribute(ctx context.Context, token string, kind AttributeKind, id string) error

	ListOrders(ctx context.Context, token string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID, status string) error
	DeleteOrder(ctx context.Context, token, orderID string) error

	ListApplicants(ctx context.Context, token string, kind ApplicantKind) ([]model.Application, error)
	UpdateApplicationStatus(ctx context.Context, token string, kind ApplicantKind, id, status string) error
	DeleteApplicant(ctx context.Context, token string, kind ApplicantKind, id string) error

	ListBanners(ctx context.Context, token string) ([]model.Banner, error)
	CreateBanner(ctx context.Context, token string, body io.Reader, contentType string) error
	UpdateBanner(ctx context.Context, token, bannerID string, body io.Reader, contentType string) error
}

type storeClientImpl struct {
	httpClient *http.Client
	baseURL    string
}

func NewStoreClient(backendCfg *config.Backend) StoreClient {
	return &storeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: backendCfg.BaseURL,
	}
}

func (c *storeClientImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/user/login", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.FromResponse(resp.StatusCode, respBody)
	}

	var result struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if result.Token == "" || result.User.ID == "" {
		return nil, fmt.Errorf("login response missing token or user id")
	}

	return &LoginResult{Token: result.Token, User: result.User}, nil
}

func (c *storeClientImpl) ListProducts(ctx context.Context, token string) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, token, "/api/product", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (c *storeClientImpl) CreateProduct(ctx context.Context, token string, body io.Reader, contentType string) error {
	if err := c.send(ctx, token, http.MethodPost, "/api/product", body, contentType); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (c *storeClientImpl) UpdateProduct(ctx context.Context, token, productID string, body io.Reader, contentType string) error {
	if err := c.send(ctx, token, http.MethodPut, "/api/product/"+productID, body, contentType); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (c *storeClientImpl) DeleteProduct(ctx context.Context, token, productID string) error {
	if err := c.send(ctx, token, http.MethodDelete, "/api/product/"+productID, nil, ""); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (c *storeClientImpl) ListAttributes(ctx context.Context, token string, kind AttributeKind) ([]model.Attribute, error) {
	var attrs []model.Attribute
	if err := c.getJSON(ctx, token, "/api/"+string(kind), &attrs); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return attrs, nil
}

func (c *storeClientImpl) CreateAttribute(ctx context.Context, token string, kind AttributeKind, name string) error {
	if err := c.sendJSON(ctx, token, http.MethodPost, "/api/"+string(kind), map[string]string{"name": name}); err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}
	return nil
}

func (c *storeClientImpl) DeleteAttribute(ctx context.Context, token string, kind AttributeKind, id string) error {
	if err := c.send(ctx, token, http.MethodDelete, "/api/"+string(kind)+"/"+id, nil, ""); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

func (c *storeClientImpl) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
	var orders []model.Order
	if err := c.getJSON(ctx, token, "/api/order", &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (c *storeClientImpl) UpdateOrderStatus(ctx context.Context, token, orderID, status string) error {
	if err := c.sendJSON(ctx, token, http.MethodPut, "/api/order/"+orderID, map[string]string{"status": status}); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (c *storeClientImpl) DeleteOrder(ctx context.Context, token, orderID string) error {
	if err := c.send(ctx, token, http.MethodDelete, "/api/order/"+orderID, nil, ""); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (c *storeClientImpl) ListApplicants(ctx context.Context, token string, kind ApplicantKind) ([]model.Application, error) {
	path := "/api/" + string(kind)

	// Retailer and supplier collections come back wrapped in an envelope
	// keyed by the collection name; applications are a bare array.
	switch kind {
	case KindRetailer:
		var envelope struct {
			Retailers []model.Application `json:"retailers"`
		}
		if err := c.getJSON(ctx, token, path, &envelope); err != nil {
			return nil, fmt.Errorf("list retailers: %w", err)
		}
		return envelope.Retailers, nil
	case KindSupplier:
		var envelope struct {
			Suppliers []model.Application `json:"suppliers"`
		}
		if err := c.getJSON(ctx, token, path, &envelope); err != nil {
			return nil, fmt.Errorf("list suppliers: %w", err)
		}
		return envelope.Suppliers, nil
	default:
		var applicants []model.Application
		if err := c.getJSON(ctx, token, path, &applicants); err != nil {
			return nil, fmt.Errorf("list %s: %w", kind, err)
		}
		return applicants, nil
	}
}

func (c *storeClientImpl) UpdateApplicationStatus(ctx context.Context, token string, kind ApplicantKind, id, status string) error {
	payload := map[string]string{"applicationStatus": status}
	if err := c.sendJSON(ctx, token, http.MethodPut, "/api/"+string(kind)+"/"+id, payload); err != nil {
		return fmt.Errorf("update %s status: %w", kind, err)
	}
	return nil
}

func (c *storeClientImpl) DeleteApplicant(ctx context.Context, token string, kind ApplicantKind, id string) error {
	if err := c.send(ctx, token, http.MethodDelete, "/api/"+string(kind)+"/"+id, nil, ""); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

func (c *storeClientImpl) ListBanners(ctx context.Context, token string) ([]model.Banner, error) {
	var banners []model.Banner
	if err := c.getJSON(ctx, token, "/api/banner", &banners); err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

func (c *storeClientImpl) CreateBanner(ctx context.Context, token string, body io.Reader, contentType string) error {
	if err := c.send(ctx, token, http.MethodPost, "/api/banner", body, contentType); err != nil {
		return fmt.Errorf("create banner: %w", err)
	}
	return nil
}

func (c *storeClientImpl) UpdateBanner(ctx context.Context, token, bannerID string, body io.Reader, contentType string) error {
	if err := c.send(ctx, token, http.MethodPut, "/api/banner/"+bannerID, body, contentType); err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

func (c *storeClientImpl) getJSON(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierr.FromResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *storeClientImpl) sendJSON(ctx context.Context, token, method, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.send(ctx, token, method, path, bytes.NewBuffer(body), "application/json")
}

func (c *storeClientImpl) send(ctx context.Context, token, method, path string, body io.Reader, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierr.FromResponse(resp.StatusCode, respBody)
	}
	return nil
}
