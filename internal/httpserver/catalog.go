package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fitgym/backend/internal/service"
	"github.com/fitgym/backend/pkg/logging"
	"github.com/fitgym/backend/pkg/util"
	"github.com/labstack/echo/v4"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"plans": h.Svc.Plans()})
}

func (h *CatalogHTTP) GetQuote(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "catalog.quote")

	q, err := h.Svc.Quote(c.Param("slug"), c.QueryParam("billing"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return fail(c, http.StatusNotFound, "Plan not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("quote_failed", "status", 400, "reason", "unsupported billing", "billing", c.QueryParam("billing"))
			return fail(c, http.StatusBadRequest, "Unsupported billing period")
		}
		return fail(c, http.StatusInternalServerError, "Failed to price plan")
	}
	return c.JSON(http.StatusOK, q)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return fail(c, http.StatusBadRequest, "id is not an integer")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Product not found")
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return fail(c, http.StatusInternalServerError, "cannot get product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetProducts(ctx, c.QueryParam("category"), offset, limit)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "cannot get products")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data": items,
		"meta": util.NewMeta(page, offset, limit, total),
	})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.SearchProducts(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return fail(c, http.StatusBadRequest, "Search query is required")
		}
		l.Error("search_failed", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": items})
}
