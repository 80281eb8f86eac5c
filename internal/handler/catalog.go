package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"plantstore-admin/internal/client"
	"plantstore-admin/internal/form"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/service"
)

// AttributeHandler serves the four flat attribute collections behind one
// route group, keyed by kind.
type AttributeHandler struct {
	lists map[client.AttributeKind]*service.AttributeList
}

func NewAttributeHandler(lists ...*service.AttributeList) *AttributeHandler {
	byKind := make(map[client.AttributeKind]*service.AttributeList, len(lists))
	for _, l := range lists {
		byKind[l.Kind()] = l
	}
	return &AttributeHandler{lists: byKind}
}

func (h *AttributeHandler) list(c echo.Context) (*service.AttributeList, error) {
	l, ok := h.lists[client.AttributeKind(c.Param("kind"))]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown attribute kind")
	}
	return l, nil
}

func (h *AttributeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	l, err := h.list(c)
	if err != nil {
		return err
	}
	if err := l.Load(ctx); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":   l.Items(),
		"loading": l.Loading(),
	})
}

type attributeCreateRequest struct {
	Name string `json:"name"`
}

func (h *AttributeHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	l, err := h.list(c)
	if err != nil {
		return err
	}

	var req attributeCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	fieldErrs, err := l.Add(ctx, req.Name)
	if fieldErrs != nil && !fieldErrs.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"fieldErrors": fieldErrs,
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"items": l.Items()})
}

func (h *AttributeHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	l, err := h.list(c)
	if err != nil {
		return err
	}
	if err := l.Delete(ctx, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"items": l.Items()})
}

// BannerHandler serves the two-slot banner board.
type BannerHandler struct {
	board *service.BannerBoard
}

func NewBannerHandler(board *service.BannerBoard) *BannerHandler {
	return &BannerHandler{board: board}
}

func (h *BannerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.board.Load(ctx); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"main":    h.board.Banner(model.BannerMain),
		"offer":   h.board.Banner(model.BannerOffer),
		"loading": h.board.Loading(),
	})
}

// Save upserts the banner for the type in the path: update when that type
// already has a record, create otherwise.
func (h *BannerHandler) Save(c echo.Context) error {
	ctx := c.Request().Context()

	bannerType := c.Param("type")
	if bannerType != model.BannerMain && bannerType != model.BannerOffer {
		return echo.NewHTTPError(http.StatusNotFound, "unknown banner type")
	}

	f := form.NewBannerForm(bannerType)
	f.Seed(h.board.Banner(bannerType))
	f.SetDescription(c.FormValue("description"))

	if fh, err := c.FormFile("file"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
		}
		if _, err := f.AttachImage(fh.Filename, data); err != nil {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		}
	}

	fieldErrs, err := h.board.Save(ctx, f)
	if fieldErrs != nil && !fieldErrs.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"fieldErrors": fieldErrs,
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"banner": h.board.Banner(bannerType),
	})
}
