package contract

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/domain"
)

// AllowedLengths are the contract terms the add form offers
var AllowedLengths = []int{12, 24, 36}

// Upper bounds keep every derived total finite.
const (
	MaxQuantity   = 1e9
	MaxTotalValue = 1e13
)

var (
	ErrMissingVendor   = errors.New("vendor is required")
	ErrInvalidQuantity = errors.New("quantity must be a positive number no greater than 1e9")
	ErrInvalidValue    = errors.New("total value must be a positive number no greater than 1e13")
	ErrInvalidLength   = errors.New("contract length must be 12, 24 or 36 months")
)

// Validate checks an input before it may become a Contract. Every returned
// error wraps domain.ErrInvalidInput.
func Validate(in domain.ContractInput) error {
	switch {
	case strings.TrimSpace(in.Vendor) == "":
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrMissingVendor)
	case !within(in.Quantity, MaxQuantity):
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrInvalidQuantity)
	case !within(in.TotalValue, MaxTotalValue):
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrInvalidValue)
	case !allowedLength(in.ContractLengthMonths):
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrInvalidLength)
	}
	return nil
}

func within(n, max float64) bool {
	return !math.IsNaN(n) && n > 0 && n <= max
}

func allowedLength(months int) bool {
	for _, l := range AllowedLengths {
		if months == l {
			return true
		}
	}
	return false
}

// Set is the user's working list of contracts, in the order they were added.
// It is not safe for concurrent use; each session or request owns its own.
type Set struct {
	catalog   *catalog.Catalog
	now       func() time.Time
	lastID    int64
	contracts []domain.Contract
}

func NewSet(cat *catalog.Catalog) *Set {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Set{
		catalog: cat,
		now:     time.Now,
	}
}

// Add validates the input, snapshots the vendor profile and appends the
// contract. Invalid input is declined: the set is left unchanged.
func (s *Set) Add(in domain.ContractInput) (domain.Contract, error) {
	if err := Validate(in); err != nil {
		return domain.Contract{}, err
	}

	c := Build(s.catalog, s.nextID(), in)
	s.contracts = append(s.contracts, c)

	return c.Clone(), nil
}

// Build turns a validated input into a contract without adding it anywhere
func Build(cat *catalog.Catalog, id int64, in domain.ContractInput) domain.Contract {
	profile := cat.Resolve(in.Vendor)
	unit, product := catalog.UnitLabel(profile.Category, in.MeteredProduct)

	return domain.Contract{
		ID:                   id,
		Vendor:               in.Vendor,
		Category:             profile.Category,
		Features:             append([]string{}, profile.Features...),
		AvgPricePerUnit:      profile.AvgPricePerUnit,
		MarketPosition:       profile.MarketPosition,
		ContractLengthMonths: in.ContractLengthMonths,
		Quantity:             in.Quantity,
		TotalValue:           in.TotalValue,
		UnitLabel:            unit,
		MeteredProduct:       product,
		ActualPricePerUnit:   domain.PricePerUnitPerMonth(in.TotalValue, in.Quantity, in.ContractLengthMonths),
	}
}

// nextID is creation-time based but strictly increasing within the set
func (s *Set) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Remove drops the contract with the given id. Order of the rest is kept.
func (s *Set) Remove(id int64) bool {
	for i, c := range s.contracts {
		if c.ID == id {
			s.contracts = append(s.contracts[:i:i], s.contracts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Set) Clear() {
	s.contracts = nil
}

func (s *Set) Len() int {
	return len(s.contracts)
}

// Contracts returns a copy in insertion order
func (s *Set) Contracts() []domain.Contract {
	out := domain.CloneContracts(s.contracts)
	if out == nil {
		out = []domain.Contract{}
	}
	return out
}
