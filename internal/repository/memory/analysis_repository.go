package memory

import (
	"context"
	"fmt"
	"sync"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
)

type AnalysisRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]domain.Analysis
}

func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{
		data: map[uuid.UUID]domain.Analysis{},
	}
}

func (r *AnalysisRepository) Create(ctx context.Context, analysis *domain.Analysis) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	if _, ok := r.data[analysis.ID]; ok {
		return domain.ErrConflict
	}

	ts := now()
	analysis.CreatedAt = ts
	analysis.UpdatedAt = ts
	r.data[analysis.ID] = cloneAnalysis(*analysis)

	return nil
}

func (r *AnalysisRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, ok := r.data[id]
	if !ok {
		return domain.Analysis{}, domain.ErrNotFound
	}

	return cloneAnalysis(analysis), nil
}

// FindAll returns analyses newest first; OrderBy is ignored
func (r *AnalysisRepository) FindAll(ctx context.Context, params domain.ListParams) ([]domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	all := make([]domain.Analysis, 0, len(r.data))
	for _, a := range r.data {
		all = append(all, cloneAnalysis(a))
	}
	r.mu.RUnlock()

	sortByCreatedDesc(all)

	return page(all, params), nil
}

func (r *AnalysisRepository) Update(ctx context.Context, analysis *domain.Analysis) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.data[analysis.ID]
	if !ok {
		return domain.ErrNotFound
	}

	analysis.CreatedAt = existing.CreatedAt
	analysis.UpdatedAt = now()
	r.data[analysis.ID] = cloneAnalysis(*analysis)

	return nil
}

func (r *AnalysisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)

	return nil
}

// cloneAnalysis detaches the stored record from the caller's contract slice
func cloneAnalysis(a domain.Analysis) domain.Analysis {
	a.Contracts = domain.CloneContracts(a.Contracts)
	return a
}
