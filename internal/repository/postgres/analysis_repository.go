package postgres

import (
	"context"
	"fmt"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalysisRepository struct {
	DB *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{
		DB: db,
	}
}

func (r *AnalysisRepository) Create(ctx context.Context, analysis *domain.Analysis) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}

	if err := r.DB.WithContext(ctx).Create(analysis).Error; err != nil {
		return translate("create analysis", err)
	}

	return nil
}

func (r *AnalysisRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, fmt.Errorf("context error: %w", err)
	}

	var analysis domain.Analysis

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&analysis).Error
	if err != nil {
		return domain.Analysis{}, translate("find analysis", err)
	}

	return analysis, nil
}

func (r *AnalysisRepository) FindAll(ctx context.Context, params domain.ListParams) ([]domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var analyses []domain.Analysis
	err := applyPage(r.DB.WithContext(ctx), params).Order("created_at desc").Find(&analyses).Error
	if err != nil {
		return nil, translate("find analyses", err)
	}

	return analyses, nil
}

func (r *AnalysisRepository) Update(ctx context.Context, analysis *domain.Analysis) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"contracts":     analysis.Contracts,
		"total_savings": analysis.TotalSavings,
		"total_spend":   analysis.TotalSpend,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Analysis{}).Where("id = ?", analysis.ID).Updates(updateData)
	if result.Error != nil {
		return translate("update analysis", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AnalysisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Analysis{})
	if result.Error != nil {
		return translate("delete analysis", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
