// Package estimator prices used assets for the pricing service.
//
// MarketModel reproduces the resale curve the service's market data follows:
// straight-line depreciation whose annual rate depends on brand tier, plus a
// fixed loss per condition step below new, capped at 90% of the purchase price.
package estimator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Valid code ranges accepted by the pricing service.
const (
	MinCondition = 1
	MaxCondition = 5
	MinBrandTier = 1
	MaxBrandTier = 3
)

// Features are the numeric inputs of a prediction.
type Features struct {
	OriginalPrice float64
	Age           int
	Condition     int // 1 (heavy wear) .. 5 (like new)
	BrandTier     int // 1 budget, 2 mid-range, 3 premium
}

// Estimator predicts a resale price from Features.
type Estimator interface {
	Estimate(f Features) float64
}

var (
	tierRates = map[int]float64{
		3: 0.15,
		2: 0.20,
		1: 0.25,
	}
	conditionStepLoss    = 0.05
	maxTotalDepreciation = 0.90
	openBoxFactor        = 0.90
)

// MarketModel is the deterministic market heuristic.
type MarketModel struct{}

// NewMarketModel creates the default estimator.
func NewMarketModel() *MarketModel { return &MarketModel{} }

// Estimate implements Estimator.
func (MarketModel) Estimate(f Features) float64 {
	rate, ok := tierRates[f.BrandTier]
	if !ok {
		rate = tierRates[MinBrandTier]
	}

	total := rate*float64(f.Age) + float64(MaxCondition-f.Condition)*conditionStepLoss
	total = math.Min(total, maxTotalDepreciation)

	resale := f.OriginalPrice * (1 - total)
	if resale > f.OriginalPrice {
		resale = f.OriginalPrice * openBoxFactor
	}
	return resale
}

// Correct keeps a raw prediction inside sane bounds and rounds it to paise:
// never at or above the purchase price, never negative.
func Correct(prediction, originalPrice float64) float64 {
	switch {
	case prediction >= originalPrice:
		prediction = originalPrice * 0.85
	case prediction < 0:
		prediction = originalPrice * 0.10
	}
	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return 0
	}
	return decimal.NewFromFloat(prediction).Round(2).InexactFloat64()
}

// Predict runs e and applies Correct.
func Predict(e Estimator, f Features) float64 {
	return Correct(e.Estimate(f), f.OriginalPrice)
}
