package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/form"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/service"
)

// form fields copied verbatim into the product draft
var productTextFields = []string{
	"name", "category", "season", "color", "shortDescription", "description",
	"rating", "price", "originalPrice", "discountPercentage", "reviews",
	"productType", "plantType", "weight", "dimensions",
	"waterRequirement", "sunlightRequirement",
}

var productFlagFields = []string{"inStock", "isBestseller", "isTrending", "codAvailable"}

type ProductHandler struct {
	products *service.ProductList
}

func NewProductHandler(products *service.ProductList) *ProductHandler {
	return &ProductHandler{products: products}
}

type productListResponse struct {
	Products     []model.Product     `json:"products"`
	Loading      bool                `json:"loading"`
	SkeletonRows int                 `json:"skeletonRows"`
	Empty        *service.EmptyState `json:"empty,omitempty"`
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.products.Load(ctx); err != nil {
		return err
	}

	resp := productListResponse{
		Products:     h.products.Visible(),
		Loading:      h.products.Loading(),
		SkeletonRows: service.SkeletonRows,
	}
	if len(resp.Products) == 0 {
		empty := h.products.Empty()
		resp.Empty = &empty
	}
	return c.JSON(http.StatusOK, resp)
}

// Create accepts the product form as multipart, runs it through the form
// controller and submits. Field errors come back as a 422 with the same
// map shape local validation uses.
func (h *ProductHandler) Create(c echo.Context) error {
	return h.save(c, nil)
}

func (h *ProductHandler) Update(c echo.Context) error {
	product, ok := h.products.Find(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return h.save(c, product)
}

func (h *ProductHandler) save(c echo.Context, existing *model.Product) error {
	ctx := c.Request().Context()

	f := form.NewProductForm()
	if existing != nil {
		f.Seed(existing)
	}
	if err := applyProductRequest(c, f); err != nil {
		return err
	}

	fieldErrs, err := h.products.Save(ctx, f)
	if fieldErrs != nil && !fieldErrs.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"fieldErrors": fieldErrs,
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.products.Delete(ctx, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func applyProductRequest(c echo.Context, f *form.ProductForm) error {
	for _, field := range productTextFields {
		if values, ok := formValues(c, field); ok {
			_ = f.SetField(field, values[0])
		}
	}
	for _, flag := range productFlagFields {
		if values, ok := formValues(c, flag); ok {
			_ = f.SetFlag(flag, values[0] == "true")
		}
	}

	if values, ok := formValues(c, "sizeRanges"); ok {
		f.SetSizeRanges(strings.Split(values[0], ","))
	}
	if values, ok := formValues(c, "faqs"); ok {
		var faqs []model.FAQ
		if err := json.Unmarshal([]byte(values[0]), &faqs); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid faqs payload")
		}
		f.SetFAQs(faqs)
	}

	mf, err := c.MultipartForm()
	if err != nil {
		// plain form submissions without files are fine
		return nil
	}
	for _, fh := range mf.File["images"] {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
		}
		if _, err := f.AttachImage(fh.Filename, data); err != nil {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		}
	}
	return nil
}

func formValues(c echo.Context, name string) ([]string, bool) {
	params, err := c.FormParams()
	if err != nil {
		return nil, false
	}
	values, ok := params[name]
	if !ok || len(values) == 0 {
		return nil, false
	}
	return values, true
}
