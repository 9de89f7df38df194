package valuation

import (
	"math"

	"github.com/shopspring/decimal"
)

// ProjectionYears is the number of years projected past the current one.
const ProjectionYears = 5

// Calculate values input as of currentYear:
//
//	price = original × (1 - rate)^age × condition × brandTier
//
// Age is clamped at zero so a purchase year in the future values the asset
// as new. FuturePrices holds currentYear through currentYear+ProjectionYears.
func Calculate(input Input, currentYear int) Result {
	age := currentYear - input.PurchaseYear
	if age < 0 {
		age = 0
	}

	rate := DepreciationRate(input.Category)
	condition := ConditionMultiplier(input.Condition)
	brand := BrandTierMultiplier(input.BrandTier)

	value := func(a int) int64 {
		depreciated := input.OriginalPrice * math.Pow(1-rate, float64(a))
		return roundMoney(depreciated * condition * brand)
	}

	future := make([]PricePoint, 0, ProjectionYears+1)
	for i := 0; i <= ProjectionYears; i++ {
		future = append(future, PricePoint{
			Year:  currentYear + i,
			Price: value(age + i),
		})
	}

	return Result{
		CurrentValue:        value(age),
		OriginalPrice:       input.OriginalPrice,
		DepreciationRate:    rate,
		Age:                 age,
		ConditionMultiplier: condition,
		BrandTierMultiplier: brand,
		FuturePrices:        future,
	}
}

// roundMoney rounds v half away from zero to a whole amount, floored at 0.
func roundMoney(v float64) int64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	}
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// RoundAmount rounds an externally supplied price the same way the engine
// rounds its own output.
func RoundAmount(v float64) int64 {
	return roundMoney(v)
}
