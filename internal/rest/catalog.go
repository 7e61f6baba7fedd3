package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogSource interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
}

type CatalogHandler struct {
	source  CatalogSource
	timeout time.Duration
}

func NewCatalogHandler(source CatalogSource, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		source:  source,
		timeout: timeout,
	}
}

func (h *CatalogHandler) load(c echo.Context) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	return h.source.Catalog(ctx)
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	cat, err := h.load(c)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cat.Categories()))
}

func (h *CatalogHandler) GetVendors(c echo.Context) error {
	cat, err := h.load(c)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cat.Vendors(c.QueryParam("category"))))
}

func (h *CatalogHandler) GetVendor(c echo.Context) error {
	cat, err := h.load(c)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return errorJSON(c, err)
	}

	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid vendor name"})
	}
	profile, ok := cat.Lookup(name)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "vendor not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"name":    name,
		"profile": profile,
	}))
}

func (h *CatalogHandler) GetMeteredProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"category": catalog.MeteredCategory,
		"default":  catalog.DefaultMeteredProduct,
		"products": catalog.MeteredProducts,
	}))
}
