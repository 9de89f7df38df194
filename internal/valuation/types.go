// Package valuation implements the depreciation engine behind SmartVal: fixed
// per-category rate tables, condition and brand tier multipliers, and the
// five-year price projection derived from them.
package valuation

import (
	"fmt"
	"strings"
)

// Category determines the annual depreciation rate of an asset.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryVehicles    Category = "vehicles"
	CategoryFurniture   Category = "furniture"
)

// Condition is the physical wear state of an asset.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// BrandTier is the market positioning of the asset's brand.
type BrandTier string

const (
	BrandTierPremium  BrandTier = "premium"
	BrandTierMidRange BrandTier = "mid-range"
	BrandTierBudget   BrandTier = "budget"
)

// Annual fractional value loss, Indian market rates.
var depreciationRates = map[Category]float64{
	CategoryElectronics: 0.25,
	CategoryVehicles:    0.15,
	CategoryFurniture:   0.12,
}

var conditionMultipliers = map[Condition]float64{
	ConditionExcellent: 1.00,
	ConditionGood:      0.85,
	ConditionFair:      0.70,
	ConditionPoor:      0.50,
}

var brandTierMultipliers = map[BrandTier]float64{
	BrandTierPremium:  1.15,
	BrandTierMidRange: 1.00,
	BrandTierBudget:   0.85,
}

// Categories lists every category in form order.
var Categories = []Category{CategoryElectronics, CategoryVehicles, CategoryFurniture}

// Conditions lists every condition from best to worst.
var Conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

// BrandTiers lists every brand tier from premium to budget.
var BrandTiers = []BrandTier{BrandTierPremium, BrandTierMidRange, BrandTierBudget}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := depreciationRates[c]
	return ok
}

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	_, ok := conditionMultipliers[c]
	return ok
}

// Valid reports whether b is a known brand tier.
func (b BrandTier) Valid() bool {
	_, ok := brandTierMultipliers[b]
	return ok
}

// ParseCategory normalizes s and returns the matching Category.
func ParseCategory(s string) (Category, error) {
	c := Category(normalize(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// ParseCondition normalizes s and returns the matching Condition.
func ParseCondition(s string) (Condition, error) {
	c := Condition(normalize(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown condition %q", s)
	}
	return c, nil
}

// ParseBrandTier normalizes s and returns the matching BrandTier.
func ParseBrandTier(s string) (BrandTier, error) {
	b := BrandTier(normalize(s))
	if !b.Valid() {
		return "", fmt.Errorf("unknown brand tier %q", s)
	}
	return b, nil
}

// DepreciationRate returns the annual depreciation rate for c.
func DepreciationRate(c Category) float64 { return depreciationRates[c] }

// ConditionMultiplier returns the value multiplier for c.
func ConditionMultiplier(c Condition) float64 { return conditionMultipliers[c] }

// BrandTierMultiplier returns the value multiplier for b.
func BrandTierMultiplier(b BrandTier) float64 { return brandTierMultipliers[b] }

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Input is a complete, validated set of asset attributes.
type Input struct {
	OriginalPrice float64   `json:"original_price"`
	PurchaseYear  int       `json:"purchase_year"`
	Category      Category  `json:"category"`
	Condition     Condition `json:"condition"`
	BrandTier     BrandTier `json:"brand_tier"`
}

// PricePoint is a projected price for a calendar year.
type PricePoint struct {
	Year  int   `json:"year"`
	Price int64 `json:"price"`
}

// Result is the derived valuation of an Input.
type Result struct {
	CurrentValue        int64        `json:"current_value"`
	OriginalPrice       float64      `json:"original_price"`
	DepreciationRate    float64      `json:"depreciation_rate"`
	Age                 int          `json:"age"`
	ConditionMultiplier float64      `json:"condition_multiplier"`
	BrandTierMultiplier float64      `json:"brand_tier_multiplier"`
	FuturePrices        []PricePoint `json:"future_prices"`
}
