package catalog

import (
	"sort"

	"saasStackAnalyzer/domain"
)

// Catalog is an immutable vendor reference table. Build one with New and
// pass it to whatever needs vendor data; nothing mutates it afterwards.
type Catalog struct {
	vendors    map[string]domain.VendorProfile
	names      []string
	categories []string
}

func New(vendors map[string]domain.VendorProfile) *Catalog {
	c := &Catalog{
		vendors: make(map[string]domain.VendorProfile, len(vendors)),
		names:   make([]string, 0, len(vendors)),
	}

	seen := make(map[string]struct{})
	for name, profile := range vendors {
		c.vendors[name] = profile.Clone()
		c.names = append(c.names, name)
		if _, ok := seen[profile.Category]; !ok {
			seen[profile.Category] = struct{}{}
			c.categories = append(c.categories, profile.Category)
		}
	}

	sort.Strings(c.names)
	sort.Strings(c.categories)

	return c
}

// Default returns the built-in reference table
func Default() *Catalog {
	return New(defaultVendors)
}

// With returns a new catalog where overrides replace or extend the receiver
func (c *Catalog) With(overrides map[string]domain.VendorProfile) *Catalog {
	merged := make(map[string]domain.VendorProfile, len(c.vendors)+len(overrides))
	for name, p := range c.vendors {
		merged[name] = p
	}
	for name, p := range overrides {
		merged[name] = p
	}
	return New(merged)
}

// Lookup is a case-sensitive exact match
func (c *Catalog) Lookup(name string) (domain.VendorProfile, bool) {
	p, ok := c.vendors[name]
	if !ok {
		return domain.VendorProfile{}, false
	}
	return p.Clone(), true
}

// Resolve never fails: unknown vendors get DefaultProfile.
func (c *Catalog) Resolve(name string) domain.VendorProfile {
	if p, ok := c.Lookup(name); ok {
		return p
	}
	return DefaultProfile()
}

// Categories is the sorted, deduplicated set of categories in the table
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Vendors lists vendor names in a category, sorted. An empty category lists
// every vendor.
func (c *Catalog) Vendors(category string) []string {
	out := []string{}
	for _, name := range c.names {
		if category == "" || c.vendors[name].Category == category {
			out = append(out, name)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.vendors)
}

// UnitLabel picks the display unit for a contract's quantity. For the metered
// category it also returns the metered product actually used.
func UnitLabel(category, meteredProduct string) (label string, product string) {
	if category != MeteredCategory {
		return domain.DefaultUnitLabel, ""
	}

	if unit, ok := MeteredProducts[meteredProduct]; ok {
		return unit, meteredProduct
	}
	return MeteredProducts[DefaultMeteredProduct], DefaultMeteredProduct
}
