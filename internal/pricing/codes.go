package pricing

import "smartval/internal/valuation"

// Numeric codes the pricing service expects in place of the enum tags.
var (
	conditionCodes = map[valuation.Condition]int{
		valuation.ConditionExcellent: 5,
		valuation.ConditionGood:      4,
		valuation.ConditionFair:      3,
		valuation.ConditionPoor:      1,
	}

	brandTierCodes = map[valuation.BrandTier]int{
		valuation.BrandTierPremium:  3,
		valuation.BrandTierMidRange: 2,
		valuation.BrandTierBudget:   1,
	}
)

// ConditionCode returns the service code for c, or 0 if c is unknown.
func ConditionCode(c valuation.Condition) int { return conditionCodes[c] }

// BrandTierCode returns the service code for b, or 0 if b is unknown.
func BrandTierCode(b valuation.BrandTier) int { return brandTierCodes[b] }

// NewPredictRequest builds the request payload for input, clamping the age
// at zero when the purchase year lies after currentYear.
func NewPredictRequest(input valuation.Input, currentYear int) PredictRequest {
	age := currentYear - input.PurchaseYear
	if age < 0 {
		age = 0
	}
	return PredictRequest{
		OriginalPrice: input.OriginalPrice,
		Age:           age,
		Condition:     ConditionCode(input.Condition),
		BrandTier:     BrandTierCode(input.BrandTier),
	}
}
