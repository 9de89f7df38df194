package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	input := Input{
		OriginalPrice: 100000,
		PurchaseYear:  testYear - 2,
		Category:      CategoryElectronics,
		Condition:     ConditionGood,
		BrandTier:     BrandTierPremium,
	}
	result := Calculate(input, testYear)
	result.CurrentValue = 42000

	d := Describe(input, result)

	assert.Equal(t, "₹42,000", d.CurrentValue)
	assert.Equal(t, "₹1,00,000", d.OriginalPrice)
	assert.Equal(t, 58, d.DepreciatedPercent)
	assert.Equal(t, "Electronics", d.Category)
	assert.Equal(t, "Good", d.Condition)
	assert.Equal(t, "Premium", d.BrandTier)
	assert.Equal(t, "2 years", d.Age)
	assert.Equal(t, "25% / year", d.DepreciationRate)
	assert.Equal(t, "0.85x × 1.15x", d.Multipliers)

	require.Len(t, d.FuturePrices, ProjectionYears+1)
	assert.Equal(t, DisplayPoint{Year: testYear, Price: "₹54,984"}, d.FuturePrices[0])
}
