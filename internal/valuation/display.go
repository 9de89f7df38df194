package valuation

// DisplayPoint is one projection point with its formatted price.
type DisplayPoint struct {
	Year  int    `json:"year"`
	Price string `json:"price"`
}

// Display holds the human-readable rendering of a Result.
type Display struct {
	CurrentValue       string         `json:"current_value"`
	OriginalPrice      string         `json:"original_price"`
	DepreciatedPercent int            `json:"depreciated_percent"`
	Category           string         `json:"category"`
	Condition          string         `json:"condition"`
	BrandTier          string         `json:"brand_tier"`
	Age                string         `json:"age"`
	DepreciationRate   string         `json:"depreciation_rate"`
	Multipliers        string         `json:"multipliers"`
	FuturePrices       []DisplayPoint `json:"future_prices"`
}

// Describe formats result for presentation. The badges come from input.
func Describe(input Input, result Result) Display {
	points := make([]DisplayPoint, len(result.FuturePrices))
	for i, p := range result.FuturePrices {
		points[i] = DisplayPoint{Year: p.Year, Price: FormatRupee(p.Price)}
	}
	return Display{
		CurrentValue:       FormatRupee(result.CurrentValue),
		OriginalPrice:      FormatRupee(RoundAmount(result.OriginalPrice)),
		DepreciatedPercent: DepreciatedPercent(result.CurrentValue, result.OriginalPrice),
		Category:           Label(string(input.Category)),
		Condition:          Label(string(input.Condition)),
		BrandTier:          Label(string(input.BrandTier)),
		Age:                AgeLabel(result.Age),
		DepreciationRate:   RateLabel(result.DepreciationRate),
		Multipliers:        MultiplierLabel(result.ConditionMultiplier, result.BrandTierMultiplier),
		FuturePrices:       points,
	}
}
