//go:build !integration

package pricing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"saasStackAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
category_adjustments:
  Cloud Infrastructure: 5
  Development Tools: 5
position_adjustments:
  Premium: -4
vendors:
  Acme Tool:
    category: Cloud Infrastructure
    features: [Compute, Storage]
    avg_price_per_unit: 12
    market_position: Budget
  Plain:
    category: Other
`

func TestDecode_AndApply(t *testing.T) {
	fc, err := Decode(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	require.Contains(t, fc.Vendors, "Acme Tool")
	assert.Equal(t, domain.MarketPositionBudget, fc.Vendors["Acme Tool"].MarketPosition)
	assert.Equal(t, []string{"Compute", "Storage"}, fc.Vendors["Acme Tool"].Features)
	assert.Equal(t, domain.MarketPositionStandard, fc.Vendors["Plain"].MarketPosition)

	cfg := fc.Apply(DefaultConfig())
	assert.Equal(t, map[string]float64{"Cloud Infrastructure": 5, "Development Tools": 5}, cfg.CategoryAdjustments)
	assert.Equal(t, -4.0, cfg.PositionAdjustments[domain.MarketPositionPremium])
	assert.Equal(t, 2.0, cfg.PositionAdjustments[domain.MarketPositionBudget])
}

func TestDecode_Empty(t *testing.T) {
	fc, err := Decode(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), fc.Apply(DefaultConfig()))
}

func TestDecode_Rejects(t *testing.T) {
	tests := map[string]string{
		"bad position":   "vendors:\n  X:\n    category: CRM\n    market_position: Luxury\n",
		"negative price": "vendors:\n  X:\n    category: CRM\n    avg_price_per_unit: -1\n",
		"bad adjustment": "position_adjustments:\n  Luxury: 3\n",
		"not yaml":       "vendors: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, fc.Vendors, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
