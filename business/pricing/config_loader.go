package pricing

import (
	"fmt"
	"io"
	"os"

	"saasStackAnalyzer/domain"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML shape of a pricing override file:
//
//	category_adjustments:
//	  Cloud Infrastructure: 5
//	  Development Tools: 5
//	vendors:
//	  Acme Tool:
//	    category: Cloud Infrastructure
//	    features: [Compute]
//	    avg_price_per_unit: 12
//	    market_position: Budget
type FileConfig struct {
	CategoryAdjustments map[string]float64              `yaml:"category_adjustments"`
	PositionAdjustments map[string]float64              `yaml:"position_adjustments"`
	Vendors             map[string]domain.VendorProfile `yaml:"vendors"`
}

func LoadFile(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to open pricing config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) (FileConfig, error) {
	var fc FileConfig
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil && err != io.EOF {
		return FileConfig{}, fmt.Errorf("failed to decode pricing config: %w", err)
	}

	for name, v := range fc.Vendors {
		if v.MarketPosition == "" {
			v.MarketPosition = domain.MarketPositionStandard
		}
		if !v.MarketPosition.Valid() {
			return FileConfig{}, fmt.Errorf("vendor %q: unknown market position %q", name, v.MarketPosition)
		}
		if v.AvgPricePerUnit < 0 {
			return FileConfig{}, fmt.Errorf("vendor %q: negative average price", name)
		}
		fc.Vendors[name] = v
	}

	for pos := range fc.PositionAdjustments {
		if !domain.MarketPosition(pos).Valid() {
			return FileConfig{}, fmt.Errorf("unknown market position %q", pos)
		}
	}

	return fc, nil
}

// Apply layers the file on top of base. Category adjustments in the file
// replace the whole table so a deployment can drop a default entry.
func (fc FileConfig) Apply(base Config) Config {
	cfg := base.clone()

	if fc.CategoryAdjustments != nil {
		cfg.CategoryAdjustments = make(map[string]float64, len(fc.CategoryAdjustments))
		for k, v := range fc.CategoryAdjustments {
			cfg.CategoryAdjustments[k] = v
		}
	}

	for k, v := range fc.PositionAdjustments {
		cfg.PositionAdjustments[domain.MarketPosition(k)] = v
	}

	return cfg
}
