package report

import (
	"strconv"
	"strings"

	"saasStackAnalyzer/domain"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// roundHalfUp matches the rounding used for impact: halves go toward +inf
func roundHalfUp(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Add(half).Floor()
}

// group inserts thousands separators into an integer string
func group(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return sign + b.String()
}

// Money rounds to whole dollars and groups thousands: 42600600.4 -> "$42,600,600"
func Money(v float64) string {
	return "$" + group(roundHalfUp(v).String())
}

func whole(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(0)
}

// Price is a per-unit price with no decimals and no grouping: 83.5 -> "$84"
func Price(v float64) string {
	return "$" + whole(v)
}

// Band renders a discount range: {37, 52} -> "37–52%"
func Band(r domain.DiscountRange) string {
	return whole(r.Low) + "–" + whole(r.High) + "%"
}

func Percent(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places) + "%"
}

// Quantity prints volumes the shortest way: 600, 2.5
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
