package postgres

import (
	"context"
	"fmt"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{
		DB: db,
	}
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}

	if err := r.DB.WithContext(ctx).Create(vendor).Error; err != nil {
		return translate("create vendor", err)
	}

	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vendor{}, fmt.Errorf("context error: %w", err)
	}

	var vendor domain.Vendor

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&vendor).Error
	if err != nil {
		return domain.Vendor{}, translate("find vendor", err)
	}

	return vendor, nil
}

func (r *VendorRepository) FindAll(ctx context.Context, params domain.ListParams) ([]domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx)
	if category := params.Filters["category"]; category != "" {
		query = query.Where("category = ?", category)
	}

	var vendors []domain.Vendor
	if err := applyPage(query, params).Order("name").Find(&vendors).Error; err != nil {
		return nil, translate("find vendors", err)
	}

	return vendors, nil
}

func (r *VendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"name":               vendor.Name,
		"category":           vendor.Category,
		"features":           vendor.Features,
		"avg_price_per_user": vendor.AvgPricePerUser,
		"market_position":    vendor.MarketPosition,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Vendor{}).Where("id = ?", vendor.ID).Updates(updateData)
	if result.Error != nil {
		return translate("update vendor", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Vendor{})
	if result.Error != nil {
		return translate("delete vendor", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
