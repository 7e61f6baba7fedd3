package rest

import (
	"context"
	"net/http"
	"time"

	"saasStackAnalyzer/business/analysis"
	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AnalysisService interface {
	CreateAnalysis(ctx context.Context, inputs []domain.ContractInput) (*analysis.Result, error)
	GetAnalysisByID(ctx context.Context, id uuid.UUID) (*analysis.Result, error)
	GetAllAnalyses(ctx context.Context, params domain.ListParams) ([]domain.Analysis, error)
	UpdateAnalysis(ctx context.Context, id uuid.UUID, inputs []domain.ContractInput) (*analysis.Result, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) error
}

type AnalysisHandler struct {
	analysisService AnalysisService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewAnalysisHandler(analysisService AnalysisService, timeout time.Duration) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		validator:       validator.New(),
		timeout:         timeout,
	}
}

type AnalysisRequest struct {
	Contracts []domain.ContractInput `json:"contracts" validate:"required,min=1"`
}

func (h *AnalysisHandler) bind(c echo.Context) (AnalysisRequest, error) {
	var req AnalysisRequest

	if err := c.Bind(&req); err != nil {
		return req, err
	}

	return req, h.validator.Struct(&req)
}

func (h *AnalysisHandler) CreateAnalysis(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		logger.Error("Failed to validate analysis request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.analysisService.CreateAnalysis(ctx, req.Contracts)
	if err != nil {
		logger.Error("Failed to create analysis", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(res))
}

func (h *AnalysisHandler) GetAllAnalyses(c echo.Context) error {
	params, err := listParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analyses, err := h.analysisService.GetAllAnalyses(ctx, params)
	if err != nil {
		logger.Error("Failed to find all analyses", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analyses))
}

func (h *AnalysisHandler) GetAnalysisByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid analysis id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid analysis id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.analysisService.GetAnalysisByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find analysis", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}

func (h *AnalysisHandler) UpdateAnalysis(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid analysis id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid analysis id"})
	}

	req, err := h.bind(c)
	if err != nil {
		logger.Error("Failed to validate analysis request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.analysisService.UpdateAnalysis(ctx, id, req.Contracts)
	if err != nil {
		logger.Error("Failed to update analysis", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}

func (h *AnalysisHandler) DeleteAnalysis(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid analysis id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid analysis id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.analysisService.DeleteAnalysis(ctx, id); err != nil {
		logger.Error("Failed to delete analysis", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Analysis deleted successfully"))
}
