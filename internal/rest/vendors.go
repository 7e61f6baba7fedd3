package rest

import (
	"context"
	"net/http"
	"time"

	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type VendorService interface {
	GetAllVendors(ctx context.Context, category string, params domain.ListParams) ([]domain.Vendor, error)
	GetVendorByID(ctx context.Context, id uuid.UUID) (domain.Vendor, error)
	CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, id uuid.UUID) error
}

type VendorHandler struct {
	vendorService VendorService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewVendorHandler(vendorService VendorService, timeout time.Duration) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		validator:     validator.New(),
		timeout:       timeout,
	}
}

type VendorRequest struct {
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Features        []string `json:"features"`
	AvgPricePerUser float64  `json:"avg_price_per_user" validate:"gte=0"`
	MarketPosition  string   `json:"market_position" validate:"omitempty,oneof=Premium Standard Budget"`
}

func (r VendorRequest) vendor(id uuid.UUID) *domain.Vendor {
	return &domain.Vendor{
		ID:              id,
		Name:            r.Name,
		Category:        r.Category,
		Features:        r.Features,
		AvgPricePerUser: r.AvgPricePerUser,
		MarketPosition:  domain.MarketPosition(r.MarketPosition),
	}
}

func (h *VendorHandler) bind(c echo.Context) (VendorRequest, error) {
	var req VendorRequest

	if err := c.Bind(&req); err != nil {
		return req, err
	}

	return req, h.validator.Struct(&req)
}

func (h *VendorHandler) GetAllVendors(c echo.Context) error {
	params, err := listParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendors, err := h.vendorService.GetAllVendors(ctx, c.QueryParam("category"), params)
	if err != nil {
		logger.Error("Failed to find all vendors", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(vendors))
}

func (h *VendorHandler) GetVendorByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid vendor id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid vendor id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendor, err := h.vendorService.GetVendorByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find vendor", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(vendor))
}

func (h *VendorHandler) CreateVendor(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		logger.Error("Failed to validate vendor request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendor, err := h.vendorService.CreateVendor(ctx, req.vendor(uuid.Nil))
	if err != nil {
		logger.Error("Failed to create vendor", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(vendor))
}

func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid vendor id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid vendor id"})
	}

	req, err := h.bind(c)
	if err != nil {
		logger.Error("Failed to validate vendor request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendor, err := h.vendorService.UpdateVendor(ctx, req.vendor(id))
	if err != nil {
		logger.Error("Failed to update vendor", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(vendor))
}

func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid vendor id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid vendor id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.vendorService.DeleteVendor(ctx, id); err != nil {
		logger.Error("Failed to delete vendor", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Vendor deleted successfully"))
}
