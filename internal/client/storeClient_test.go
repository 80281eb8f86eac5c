package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/client"
	"plantstore-admin/internal/config"
)

func newTestClient(handler http.Handler) (client.StoreClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := client.NewStoreClient(&config.Backend{BaseURL: srv.URL})
	return c, srv
}

func TestLogin(t *testing.T) {
	t.Run("success returns token and user", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody map[string]string

		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(map[string]any{
				"token": "jwt-abc",
				"user":  map[string]string{"id": "u42", "email": "admin@shop.test"},
			})
		}))
		defer srv.Close()

		result, err := c.Login(context.Background(), "admin@shop.test", "secret")
		require.NoError(t, err)
		assert.Equal(t, "/api/user/login", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, map[string]string{"email": "admin@shop.test", "password": "secret"}, gotBody)
		assert.Equal(t, "jwt-abc", result.Token)
		assert.Equal(t, "u42", result.User.ID)
	})

	t.Run("backend rejection carries its message", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid credentials"}`))
		}))
		defer srv.Close()

		_, err := c.Login(context.Background(), "admin@shop.test", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, apierr.ErrUnauthorized)
		assert.Equal(t, "invalid credentials", apierr.UserMessage(err, "fallback"))
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user":{"id":"u1"}}`))
		}))
		defer srv.Close()

		_, err := c.Login(context.Background(), "a@b.c", "pw")
		require.Error(t, err)
	})
}

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := c.ListOrders(context.Background(), "jwt-abc")
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-abc", gotAuth)
}

func TestUnauthorizedSentinel(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"jwt expired"}`))
	}))
	defer srv.Close()

	_, err := c.ListProducts(context.Background(), "stale")
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrUnauthorized)
	assert.Equal(t, "jwt expired", apierr.UserMessage(err, "fallback"))
}

func TestListApplicants(t *testing.T) {
	t.Run("retailers arrive in an envelope", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/retailer", r.URL.Path)
			w.Write([]byte(`{"retailers":[{"_id":"r1","name":"Green Corner","applicationStatus":"accepted"}]}`))
		}))
		defer srv.Close()

		applicants, err := c.ListApplicants(context.Background(), "t", client.KindRetailer)
		require.NoError(t, err)
		require.Len(t, applicants, 1)
		assert.Equal(t, "r1", applicants[0].ID)
	})

	t.Run("suppliers arrive in an envelope", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"suppliers":[{"_id":"s1","name":"Leafy Goods","applicationStatus":"pending"}]}`))
		}))
		defer srv.Close()

		applicants, err := c.ListApplicants(context.Background(), "t", client.KindSupplier)
		require.NoError(t, err)
		require.Len(t, applicants, 1)
		assert.Equal(t, "s1", applicants[0].ID)
	})

	t.Run("applications are a bare array", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/application", r.URL.Path)
			w.Write([]byte(`[{"_id":"a1","applicationStatus":"rejected"}]`))
		}))
		defer srv.Close()

		applicants, err := c.ListApplicants(context.Background(), "t", client.KindApplication)
		require.NoError(t, err)
		require.Len(t, applicants, 1)
		assert.Equal(t, "a1", applicants[0].ID)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := c.UpdateApplicationStatus(context.Background(), "t", client.KindRetailer, "r1", "accepted")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/retailer/r1", gotPath)
	assert.Equal(t, map[string]string{"applicationStatus": "accepted"}, gotBody)
}

func TestAttributeRoutes(t *testing.T) {
	var paths []string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx := context.Background()
	_, err := c.ListAttributes(ctx, "t", client.KindColor)
	require.NoError(t, err)
	require.NoError(t, c.CreateAttribute(ctx, "t", client.KindPlantType, "Succulent"))
	require.NoError(t, c.DeleteAttribute(ctx, "t", client.KindCategory, "c9"))

	assert.Equal(t, []string{
		"GET /api/colortype",
		"POST /api/planttype",
		"DELETE /api/category/c9",
	}, paths)
}

func TestCreateProductForwardsMultipart(t *testing.T) {
	var gotContentType, gotBody string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(raw)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	body := strings.NewReader("--xyz\r\nfake multipart\r\n--xyz--\r\n")
	err := c.CreateProduct(context.Background(), "t", body, "multipart/form-data; boundary=xyz")
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data; boundary=xyz", gotContentType)
	assert.Contains(t, gotBody, "fake multipart")
}

func TestDeleteOrderError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Cannot delete"}`))
	}))
	defer srv.Close()

	err := c.DeleteOrder(context.Background(), "t", "o1")
	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Cannot delete", apiErr.Message)
}
