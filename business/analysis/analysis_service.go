package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/business/contract"
	"saasStackAnalyzer/business/pricing"
	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/pkg/logger"
	"saasStackAnalyzer/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrTooFewContracts = fmt.Errorf("%w: at least %d contracts are needed for an analysis",
	domain.ErrInvalidInput, contract.MinContractsToAnalyze)

// AnalysisRepository contract interface
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *domain.Analysis) error
	FindByID(ctx context.Context, id uuid.UUID) (domain.Analysis, error)
	FindAll(ctx context.Context, params domain.ListParams) ([]domain.Analysis, error)
	Update(ctx context.Context, analysis *domain.Analysis) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorSource supplies stored vendor profiles that override the built-in table
type VendorSource interface {
	Overrides(ctx context.Context) (map[string]domain.VendorProfile, error)
}

// Rejection is an input that was declined during evaluation
type Rejection struct {
	Index  int    `json:"index"`
	Vendor string `json:"vendor"`
	Reason string `json:"reason"`
}

type Evaluation struct {
	Report   domain.StackReport `json:"report"`
	Rejected []Rejection        `json:"rejected"`
}

type Result struct {
	Analysis domain.Analysis    `json:"analysis"`
	Report   domain.StackReport `json:"report"`
}

type analysisService struct {
	analysisRepo AnalysisRepository
	vendors      VendorSource
	model        *pricing.Model
}

func NewAnalysisService(analysisRepo AnalysisRepository, model *pricing.Model, vendors VendorSource) *analysisService {
	return &analysisService{
		analysisRepo: analysisRepo,
		vendors:      vendors,
		model:        model,
	}
}

// currentModel layers stored vendors over the configured catalog
func (s *analysisService) currentModel(ctx context.Context) (*pricing.Model, error) {
	if s.vendors == nil {
		return s.model, nil
	}

	overrides, err := s.vendors.Overrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor overrides: %w", err)
	}
	if len(overrides) == 0 {
		return s.model, nil
	}

	return s.model.WithCatalog(s.model.Catalog().With(overrides)), nil
}

// Catalog is the vendor table currently used for evaluation
func (s *analysisService) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	model, err := s.currentModel(ctx)
	if err != nil {
		logger.Error("Failed to build pricing model", err)
		return nil, err
	}

	return model.Catalog(), nil
}

func (s *analysisService) evaluate(model *pricing.Model, contracts []domain.Contract) domain.StackReport {
	start := time.Now()
	report := model.Evaluate(contracts)
	metrics.EvaluateLatency.Observe(time.Since(start).Seconds())

	metrics.ContractsEvaluated.Add(float64(len(contracts)))
	for _, e := range report.Expectations {
		metrics.DealStatus.WithLabelValues(string(e.Status)).Inc()
	}

	return report
}

// Evaluate scores inputs without persisting anything. Invalid inputs are
// skipped and reported back.
func (s *analysisService) Evaluate(ctx context.Context, inputs []domain.ContractInput) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when evaluating contracts")
		return Evaluation{}, fmt.Errorf("context error: %w", err)
	}

	model, err := s.currentModel(ctx)
	if err != nil {
		logger.Error("Failed to build pricing model", err)
		return Evaluation{}, err
	}

	set := contract.NewSet(model.Catalog())
	rejected := []Rejection{}
	for i, in := range inputs {
		if _, err := set.Add(in); err != nil {
			rejected = append(rejected, Rejection{Index: i, Vendor: in.Vendor, Reason: err.Error()})
		}
	}
	metrics.ContractsRejected.Add(float64(len(rejected)))

	return Evaluation{
		Report:   s.evaluate(model, set.Contracts()),
		Rejected: rejected,
	}, nil
}

// buildContracts is the strict path used for stored analyses: any invalid
// input fails the whole request.
func (s *analysisService) buildContracts(ctx context.Context, inputs []domain.ContractInput) (*pricing.Model, []domain.Contract, error) {
	model, err := s.currentModel(ctx)
	if err != nil {
		return nil, nil, err
	}

	ws := contract.NewWorkspace(contract.NewSet(model.Catalog()))
	for i, in := range inputs {
		if _, err := ws.Set.Add(in); err != nil {
			return nil, nil, fmt.Errorf("contract %d: %w", i, err)
		}
	}

	if !ws.Fire(contract.EventAnalyze) {
		return nil, nil, ErrTooFewContracts
	}

	return model, ws.Set.Contracts(), nil
}

func applyTotals(a *domain.Analysis, savings domain.Savings) {
	a.TotalSavings = decimal.NewFromFloat(savings.TotalSavings).Round(2)
	a.TotalSpend = decimal.NewFromFloat(savings.TotalSpend).Round(2)
}

func (s *analysisService) CreateAnalysis(ctx context.Context, inputs []domain.ContractInput) (*Result, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create analysis")
		return nil, fmt.Errorf("context error: %w", err)
	}

	model, contracts, err := s.buildContracts(ctx, inputs)
	if err != nil {
		logger.Error("Invalid analysis data", err)
		return nil, err
	}

	report := s.evaluate(model, contracts)

	analysis := domain.Analysis{
		ID:        uuid.New(),
		Contracts: contracts,
	}
	applyTotals(&analysis, report.Savings)

	if err := s.analysisRepo.Create(ctx, &analysis); err != nil {
		logger.Error("failed to create new analysis", err)
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	metrics.AnalysesSaved.Inc()
	logger.Info("analysis created successfully", "analysis_id", analysis.ID.String())

	return &Result{Analysis: analysis, Report: report}, nil
}

func (s *analysisService) GetAnalysisByID(ctx context.Context, id uuid.UUID) (*Result, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get analysis by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	analysis, err := s.analysisRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find analysis", err)
		return nil, err
	}

	// stored contracts carry their own vendor snapshot
	return &Result{Analysis: analysis, Report: s.model.Evaluate(analysis.Contracts)}, nil
}

func (s *analysisService) GetAllAnalyses(ctx context.Context, params domain.ListParams) ([]domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all analyses")
		return nil, fmt.Errorf("context error: %w", err)
	}

	params = params.Normalize()
	params.OrderBy = "created_at desc"

	analyses, err := s.analysisRepo.FindAll(ctx, params)
	if err != nil {
		logger.Error("Failed to find all analyses", err)
		return nil, err
	}

	return analyses, nil
}

// UpdateAnalysis replaces the contracts of a stored analysis and recomputes
// its totals
func (s *analysisService) UpdateAnalysis(ctx context.Context, id uuid.UUID, inputs []domain.ContractInput) (*Result, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating analysis")
		return nil, fmt.Errorf("context error: %w", err)
	}

	analysis, err := s.analysisRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("analysis not found", err)
		return nil, err
	}

	model, contracts, err := s.buildContracts(ctx, inputs)
	if err != nil {
		logger.Error("Invalid analysis data", err)
		return nil, err
	}

	report := s.evaluate(model, contracts)
	analysis.Contracts = contracts
	applyTotals(&analysis, report.Savings)

	if err := s.analysisRepo.Update(ctx, &analysis); err != nil {
		logger.Error("failed to update analysis", err)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update analysis: %w", err)
	}

	logger.Info("analysis updated successfully", "analysis_id", id.String())

	return &Result{Analysis: analysis, Report: report}, nil
}

func (s *analysisService) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting analysis")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.analysisRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete analysis", err)
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	logger.Info("analysis deleted successfully", "analysis_id", id.String())

	return nil
}
