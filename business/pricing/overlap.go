package pricing

import "saasStackAnalyzer/domain"

// FeatureOverlaps compares every pair once, in insertion order, and reports
// the features they share. Matching is exact; pairs sharing nothing are left
// out.
func FeatureOverlaps(contracts []domain.Contract) []domain.FeatureOverlap {
	overlaps := []domain.FeatureOverlap{}

	for i := 0; i < len(contracts); i++ {
		for j := i + 1; j < len(contracts); j++ {
			common := intersect(contracts[i].Features, contracts[j].Features)
			if len(common) == 0 {
				continue
			}
			overlaps = append(overlaps, domain.FeatureOverlap{
				VendorA:        contracts[i].Vendor,
				VendorB:        contracts[j].Vendor,
				CommonFeatures: common,
				Count:          len(common),
			})
		}
	}

	return overlaps
}

// intersect keeps a's order and drops repeats
func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, f := range b {
		inB[f] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, f := range a {
		if _, ok := inB[f]; !ok {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
