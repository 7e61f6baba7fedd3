// Package memory holds map-backed repositories used when no database is
// configured, and by tests.
package memory

import (
	"sort"
	"strings"
	"time"

	"saasStackAnalyzer/domain"
)

var now = func() time.Time { return time.Now().UTC() }

// page applies offset and limit to an already ordered slice
func page[T any](items []T, params domain.ListParams) []T {
	params = params.Normalize()
	if params.Offset >= len(items) {
		return []T{}
	}

	end := params.Offset + params.Limit
	if end > len(items) {
		end = len(items)
	}

	return append([]T{}, items[params.Offset:end]...)
}

func sortByCreatedDesc(items []domain.Analysis) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func sortByName(items []domain.Vendor) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.Compare(items[i].Name, items[j].Name) < 0
	})
}
