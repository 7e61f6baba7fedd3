package rest

import (
	"context"
	"net/http"
	"time"

	"saasStackAnalyzer/business/analysis"
	"saasStackAnalyzer/business/report"
	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PricingService interface {
	Evaluate(ctx context.Context, inputs []domain.ContractInput) (analysis.Evaluation, error)
}

type PricingHandler struct {
	pricingService PricingService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewPricingHandler(pricingService PricingService, timeout time.Duration) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		validator:      validator.New(),
		timeout:        timeout,
	}
}

type EvaluateRequest struct {
	Contracts []domain.ContractInput `json:"contracts" validate:"required"`
}

type EvaluateResponse struct {
	analysis.Evaluation
	Rows    []report.Row   `json:"rows"`
	Summary report.Summary `json:"summary"`
}

func (h *PricingHandler) Evaluate(c echo.Context) error {
	var req EvaluateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate evaluate request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ev, err := h.pricingService.Evaluate(ctx, req.Contracts)
	if err != nil {
		logger.Error("Failed to evaluate contracts", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(EvaluateResponse{
		Evaluation: ev,
		Rows:       report.Rows(ev.Report),
		Summary:    report.Summarize(ev.Report.Savings),
	}))
}
