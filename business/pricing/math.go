package pricing

import "math"

func clamp(n, min, max float64) float64 {
	return math.Min(max, math.Max(min, n))
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2
func roundHalfUp(n float64) float64 {
	return math.Floor(n + 0.5)
}
