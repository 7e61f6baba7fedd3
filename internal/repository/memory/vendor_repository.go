package memory

import (
	"context"
	"fmt"
	"sync"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
)

type VendorRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]domain.Vendor
}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{
		data: map[uuid.UUID]domain.Vendor{},
	}
}

// nameTaken must be called with the lock held
func (r *VendorRepository) nameTaken(name string, except uuid.UUID) bool {
	for id, v := range r.data {
		if v.Name == name && id != except {
			return true
		}
	}
	return false
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	if _, ok := r.data[vendor.ID]; ok || r.nameTaken(vendor.Name, uuid.Nil) {
		return domain.ErrConflict
	}

	ts := now()
	vendor.CreatedAt = ts
	vendor.UpdatedAt = ts
	r.data[vendor.ID] = *vendor

	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vendor{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, ok := r.data[id]
	if !ok {
		return domain.Vendor{}, domain.ErrNotFound
	}

	return vendor, nil
}

// FindAll orders by name and honours the "category" filter
func (r *VendorRepository) FindAll(ctx context.Context, params domain.ListParams) ([]domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	category := params.Filters["category"]

	r.mu.RLock()
	all := make([]domain.Vendor, 0, len(r.data))
	for _, v := range r.data {
		if category != "" && v.Category != category {
			continue
		}
		all = append(all, v)
	}
	r.mu.RUnlock()

	sortByName(all)

	return page(all, params), nil
}

func (r *VendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.data[vendor.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.nameTaken(vendor.Name, vendor.ID) {
		return domain.ErrConflict
	}

	vendor.CreatedAt = existing.CreatedAt
	vendor.UpdatedAt = now()
	r.data[vendor.ID] = *vendor

	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
